package devotions

import "testing"

func TestRequirePositiveInt(t *testing.T) {
	valid := []string{"1", "23", " 4 "}
	for _, s := range valid {
		if err := requirePositiveInt(s); err != nil {
			t.Errorf("requirePositiveInt(%q) = %v, want nil", s, err)
		}
	}

	invalid := []string{"", "0", "-3", "abc", "1.5"}
	for _, s := range invalid {
		if err := requirePositiveInt(s); err == nil {
			t.Errorf("requirePositiveInt(%q) = nil, want error", s)
		}
	}
}
