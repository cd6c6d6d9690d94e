package bignum

import "testing"

func TestArithmetic(t *testing.T) {
	tests := []struct {
		name string
		a, b int64
		op   func(a, b Integer) Integer
		want int64
	}{
		{"add", 2, 3, Integer.Add, 5},
		{"sub", 2, 3, Integer.Sub, -1},
		{"mul", -4, 3, Integer.Mul, -12},
		{"and", 0b1100, 0b1010, Integer.And, 0b1000},
		{"or", 0b1100, 0b1010, Integer.Or, 0b1110},
		{"xor", 0b1100, 0b1010, Integer.Xor, 0b0110},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.op(FromInt64(tt.a), FromInt64(tt.b))
			if want := FromInt64(tt.want); !got.Eq(want) {
				t.Errorf("got %s, want %s", got, want)
			}
		})
	}
}

func TestDivModTruncateTowardZero(t *testing.T) {
	tests := []struct {
		name       string
		a, b       int64
		wantQuot   int64
		wantRem    int64
	}{
		{"positive/positive", 7, 2, 3, 1},
		{"negative/positive", -7, 2, -3, -1},
		{"positive/negative", 7, -2, -3, 1},
		{"negative/negative", -7, -2, 3, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := FromInt64(tt.a), FromInt64(tt.b)

			quot, err := a.Div(b)
			if err != nil {
				t.Fatalf("Div: %v", err)
			}
			if want := FromInt64(tt.wantQuot); !quot.Eq(want) {
				t.Errorf("Div: got %s, want %s", quot, want)
			}

			rem, err := a.Mod(b)
			if err != nil {
				t.Fatalf("Mod: %v", err)
			}
			if want := FromInt64(tt.wantRem); !rem.Eq(want) {
				t.Errorf("Mod: got %s, want %s", rem, want)
			}
		})
	}
}

func TestDivideByZero(t *testing.T) {
	a := FromInt64(1)
	zero := FromInt64(0)

	if _, err := a.Div(zero); err != ErrDivideByZero {
		t.Errorf("Div by zero: got %v, want %v", err, ErrDivideByZero)
	}
	if _, err := a.Mod(zero); err != ErrDivideByZero {
		t.Errorf("Mod by zero: got %v, want %v", err, ErrDivideByZero)
	}
}

func TestByte(t *testing.T) {
	tests := []struct {
		n    int64
		want byte
	}{
		{65, 'A'},
		{65 + 256, 'A'},
		{-1, 255},
		{0, 0},
	}
	for _, tt := range tests {
		if got := FromInt64(tt.n).Byte(); got != tt.want {
			t.Errorf("Byte(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestFromString(t *testing.T) {
	v, err := FromString("-1234567890123456789012345678901234567890")
	if err != nil {
		t.Fatalf("FromString: %v", err)
	}
	if v.Sign() != -1 {
		t.Errorf("expected negative sign")
	}

	if _, err := FromString("not a number"); err != ErrParse {
		t.Errorf("got %v, want ErrParse", err)
	}
}

func TestIntConversion(t *testing.T) {
	if n, ok := FromInt64(42).Int(); !ok || n != 42 {
		t.Errorf("Int() = %d, %v; want 42, true", n, ok)
	}

	huge, _ := FromString("999999999999999999999999999999999999999")
	if _, ok := huge.Int(); ok {
		t.Errorf("expected overflow to report ok=false")
	}
}
