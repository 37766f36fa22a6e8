package model

import "strconv"

// Text converts a scalar field value to its textual form; true becomes "1"
// and false "". Mappings, lists and nil are not text.
func Text(value interface{}) (string, bool) {
	switch actual := value.(type) {
	case string:
		return actual, true
	case int:
		return strconv.Itoa(actual), true
	case int64:
		return strconv.FormatInt(actual, 10), true
	case uint64:
		return strconv.FormatUint(actual, 10), true
	case float64:
		return strconv.FormatFloat(actual, 'f', -1, 64), true
	case bool:
		if actual {
			return "1", true
		}
		return "", true
	}
	return "", false
}
