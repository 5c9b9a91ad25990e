package expression

// argKind describes what a function accepts in one argument position.
type argKind int

const (
	argPath argKind = iota
	argValue
	argPathOrValue
)

// functions maps the supported predicate functions to their argument shapes.
// Arity is fixed; the parser rejects any other call form.
var functions = map[string][]argKind{
	"attribute_exists":     {argPath},
	"attribute_not_exists": {argPath},
	"attribute_type":       {argPath, argValue},
	"begins_with":          {argPath, argValue},
	"contains":             {argPath, argPathOrValue},
	"size":                 {argPath},
}

// IsFunction reports whether name is a supported predicate function.
func IsFunction(name string) bool {
	_, ok := functions[lower(name)]

	return ok
}

func lower(s string) string {
	b := []byte(s)
	for i, ch := range b {
		if 'A' <= ch && ch <= 'Z' {
			b[i] = ch - 'A' + 'a'
		}
	}

	return string(b)
}
