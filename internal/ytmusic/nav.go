package ytmusic

// nav walks a decoded JSON tree. String path elements index maps, int path
// elements index slices. Any miss yields nil rather than a panic; upstream
// responses routinely omit branches.
func nav(v any, path ...any) any {
	for _, p := range path {
		switch key := p.(type) {
		case string:
			m, ok := v.(map[string]any)
			if !ok {
				return nil
			}
			v = m[key]
		case int:
			l, ok := v.([]any)
			if !ok || key < 0 || key >= len(l) {
				return nil
			}
			v = l[key]
		default:
			return nil
		}
	}
	return v
}

// navList returns the slice at the given path, or nil.
func navList(v any, path ...any) []any {
	l, _ := nav(v, path...).([]any)
	return l
}

// navString returns the string at the given path, or "".
func navString(v any, path ...any) string {
	s, _ := nav(v, path...).(string)
	return s
}

// runsText joins the text runs of an upstream formatted-string node.
func runsText(v any) string {
	var out string
	for _, run := range navList(v, "runs") {
		out += navString(run, "text")
	}
	return out
}
