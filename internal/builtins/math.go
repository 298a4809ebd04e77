package builtins

import (
	"fmt"
	"math"

	"github.com/kaynat-lang/kaynat/internal/interp"
)

// mathTools is grounded on original_source/kaynat/stdlib/math_tools.py.
func mathTools() []registration {
	return []registration{
		{"sqrt", biSqrt},
		{"abs_value", biAbsValue},
		{"round_number", biRoundNumber},
		{"ceiling", biCeiling},
		{"floor", biFloor},
		{"pow", biPower},
		{"logarithm", biLogarithm},
		{"sin", biSin},
		{"cos", biCos},
		{"tan", biTan},
		{"asin", biAsin},
		{"acos", biAcos},
		{"atan", biAtan},
		{"factorial", biFactorial},
		{"gcd", biGCD},
		{"lcm", biLCM},
		{"is_prime", biIsPrime},
		{"min_value", biMinValue},
		{"max_value", biMaxValue},
		{"clamp", biClamp},
	}
}

func biSqrt(args []interp.Value) (interp.Value, error) {
	n, err := numArg("sqrt", args, 0)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("cannot take square root of negative number")
	}
	return numVal(math.Sqrt(n)), nil
}

func biAbsValue(args []interp.Value) (interp.Value, error) {
	n, err := numArg("abs_value", args, 0)
	if err != nil {
		return nil, err
	}
	return numVal(math.Abs(n)), nil
}

func biRoundNumber(args []interp.Value) (interp.Value, error) {
	n, err := numArg("round_number", args, 0)
	if err != nil {
		return nil, err
	}
	decimals := optNum(args, 1, 0)
	scale := math.Pow(10, decimals)
	return numVal(math.Round(n*scale) / scale), nil
}

func biCeiling(args []interp.Value) (interp.Value, error) {
	n, err := numArg("ceiling", args, 0)
	if err != nil {
		return nil, err
	}
	return numVal(math.Ceil(n)), nil
}

func biFloor(args []interp.Value) (interp.Value, error) {
	n, err := numArg("floor", args, 0)
	if err != nil {
		return nil, err
	}
	return numVal(math.Floor(n)), nil
}

func biPower(args []interp.Value) (interp.Value, error) {
	base, err := numArg("power", args, 0)
	if err != nil {
		return nil, err
	}
	exp, err := numArg("power", args, 1)
	if err != nil {
		return nil, err
	}
	return numVal(math.Pow(base, exp)), nil
}

func biLogarithm(args []interp.Value) (interp.Value, error) {
	n, err := numArg("logarithm", args, 0)
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		return nil, fmt.Errorf("logarithm requires a positive number")
	}
	base := optNum(args, 1, math.E)
	if base == math.E {
		return numVal(math.Log(n)), nil
	}
	return numVal(math.Log(n) / math.Log(base)), nil
}

func biSin(args []interp.Value) (interp.Value, error) {
	n, err := numArg("sin", args, 0)
	if err != nil {
		return nil, err
	}
	return numVal(math.Sin(n * math.Pi / 180)), nil
}

func biCos(args []interp.Value) (interp.Value, error) {
	n, err := numArg("cos", args, 0)
	if err != nil {
		return nil, err
	}
	return numVal(math.Cos(n * math.Pi / 180)), nil
}

func biTan(args []interp.Value) (interp.Value, error) {
	n, err := numArg("tan", args, 0)
	if err != nil {
		return nil, err
	}
	return numVal(math.Tan(n * math.Pi / 180)), nil
}

func biAsin(args []interp.Value) (interp.Value, error) {
	n, err := numArg("asin", args, 0)
	if err != nil {
		return nil, err
	}
	if n < -1 || n > 1 {
		return nil, fmt.Errorf("arcsine requires a value between -1 and 1")
	}
	return numVal(math.Asin(n) * 180 / math.Pi), nil
}

func biAcos(args []interp.Value) (interp.Value, error) {
	n, err := numArg("acos", args, 0)
	if err != nil {
		return nil, err
	}
	if n < -1 || n > 1 {
		return nil, fmt.Errorf("arccosine requires a value between -1 and 1")
	}
	return numVal(math.Acos(n) * 180 / math.Pi), nil
}

func biAtan(args []interp.Value) (interp.Value, error) {
	n, err := numArg("atan", args, 0)
	if err != nil {
		return nil, err
	}
	return numVal(math.Atan(n) * 180 / math.Pi), nil
}

func biFactorial(args []interp.Value) (interp.Value, error) {
	n, err := numArg("factorial", args, 0)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("factorial requires a non-negative integer")
	}
	result := 1.0
	for i := 2; i <= int(n); i++ {
		result *= float64(i)
	}
	return numVal(result), nil
}

func intGCD(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func biGCD(args []interp.Value) (interp.Value, error) {
	a, err := numArg("gcd", args, 0)
	if err != nil {
		return nil, err
	}
	b, err := numArg("gcd", args, 1)
	if err != nil {
		return nil, err
	}
	return numVal(float64(intGCD(int(a), int(b)))), nil
}

func biLCM(args []interp.Value) (interp.Value, error) {
	a, err := numArg("lcm", args, 0)
	if err != nil {
		return nil, err
	}
	b, err := numArg("lcm", args, 1)
	if err != nil {
		return nil, err
	}
	ia, ib := int(a), int(b)
	if ia == 0 || ib == 0 {
		return numVal(0), nil
	}
	g := intGCD(ia, ib)
	return numVal(float64(ia / g * ib)), nil
}

func biIsPrime(args []interp.Value) (interp.Value, error) {
	n, err := numArg("is_prime", args, 0)
	if err != nil {
		return nil, err
	}
	num := int(n)
	if num < 2 {
		return boolVal(false), nil
	}
	for i := 2; i*i <= num; i++ {
		if num%i == 0 {
			return boolVal(false), nil
		}
	}
	return boolVal(true), nil
}

func biMinValue(args []interp.Value) (interp.Value, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("min_value requires at least one argument")
	}
	best, err := numArg("min_value", args, 0)
	if err != nil {
		return nil, err
	}
	for i := 1; i < len(args); i++ {
		n, err := numArg("min_value", args, i)
		if err != nil {
			return nil, err
		}
		if n < best {
			best = n
		}
	}
	return numVal(best), nil
}

func biMaxValue(args []interp.Value) (interp.Value, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("max_value requires at least one argument")
	}
	best, err := numArg("max_value", args, 0)
	if err != nil {
		return nil, err
	}
	for i := 1; i < len(args); i++ {
		n, err := numArg("max_value", args, i)
		if err != nil {
			return nil, err
		}
		if n > best {
			best = n
		}
	}
	return numVal(best), nil
}

func biClamp(args []interp.Value) (interp.Value, error) {
	v, err := numArg("clamp", args, 0)
	if err != nil {
		return nil, err
	}
	min, err := numArg("clamp", args, 1)
	if err != nil {
		return nil, err
	}
	max, err := numArg("clamp", args, 2)
	if err != nil {
		return nil, err
	}
	return numVal(math.Max(min, math.Min(max, v))), nil
}
