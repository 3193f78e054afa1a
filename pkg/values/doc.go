// Package values generates representative boolean-like tokens for table-driven tests.
//
// The truthy and falsy generators return the tokens a configuration parser is
// conventionally expected to understand: boolean literals, mixed-case word forms,
// single-letter forms, on/off forms and numeric forms.
//
// # Example
//
//	func TestParseFlag(t *testing.T) {
//	    values.Run(t, values.MustTruthyValues(values.WithExtra("enabled")), func(t *testing.T, v any) {
//	        got, err := parseFlag(fmt.Sprint(v))
//	        require.NoError(t, err)
//	        assert.True(t, got)
//	    })
//	}
//
// Sampling with WithRatio draws from a shared random source. Call Seed first
// when the sample must be reproducible.
package values
