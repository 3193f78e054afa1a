package values

// whitespaceChars の並び順が順列の辞書順の基準になる
const whitespaceChars = " \t\n\r"

// WhitespacePerms returns every ordering of space, tab, newline and carriage return.
//
// Orderings are listed in lexicographic order of character position. WithRatio
// samples them the same way TruthyValues does; WithExtra is ignored.
func WhitespacePerms(opts ...Option) ([]string, error) {
	o := newOptions(opts)

	chars := []byte(whitespaceChars)
	idx := make([]int, len(chars))
	for i := range idx {
		idx[i] = i
	}

	var perms []string
	for {
		buf := make([]byte, len(idx))
		for i, j := range idx {
			buf[i] = chars[j]
		}
		perms = append(perms, string(buf))

		if !nextPermutation(idx) {
			break
		}
	}

	if !o.hasRatio {
		return perms, nil
	}
	return sample(perms, o)
}

// nextPermutation rearranges idx into the next lexicographic permutation.
// It returns false once idx is the last one.
func nextPermutation(idx []int) bool {
	i := len(idx) - 2
	for i >= 0 && idx[i] >= idx[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(idx) - 1
	for idx[j] <= idx[i] {
		j--
	}
	idx[i], idx[j] = idx[j], idx[i]
	for l, r := i+1, len(idx)-1; l < r; l, r = l+1, r-1 {
		idx[l], idx[r] = idx[r], idx[l]
	}
	return true
}
