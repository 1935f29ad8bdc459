package domain

// CoalesceStr returns the first non-empty string from vals.
func CoalesceStr(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// FirstOr returns the first element of list, or fallback when list is empty.
func FirstOr(list []string, fallback string) string {
	if len(list) == 0 {
		return fallback
	}
	return CoalesceStr(list[0], fallback)
}
