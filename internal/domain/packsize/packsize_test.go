package packsize

import "testing"

func TestParseCaseWeight(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"4/10 lb", 40, true},
		{"6 x 5lb", 30, true},
		{"12x2.5 lbs", 30, true},
		{"40 lb", 40, true},
		{"40lbs", 40, true},
		{"40#", 40, true},
		{"10 lb case, frozen", 10, true},
		{"2/20 pound", 40, true},
		{"", 0, false},
		{"case of wings", 0, false},
		{"0 lb", 0, false},
		{"50/50 lb", 0, false}, // 2500 lbs, over the bound
		{"300 lb", 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := ParseCaseWeight(tc.in)
			if ok != tc.ok {
				t.Fatalf("ParseCaseWeight(%q) ok=%v, want %v", tc.in, ok, tc.ok)
			}
			if ok && got != tc.want {
				t.Fatalf("ParseCaseWeight(%q)=%v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	if Validate(0) || Validate(-1) || Validate(201) {
		t.Fatalf("out-of-bounds weights must not validate")
	}
	if !Validate(0.5) || !Validate(200) {
		t.Fatalf("in-bounds weights must validate")
	}
}
