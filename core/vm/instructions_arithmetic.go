package vm

// Arithmetic opcodes (spec §4.6). Each pops its operands and mutates the
// new stack top in place via uint256's two/three-operand methods, the same
// pop-then-peek convention the rest of the corpus's EVM implementations use
// to avoid an extra push.

func opAdd(f *Frame) ([]byte, error) {
	x, y := f.Stack.pop(), f.Stack.peek()
	y.Add(&x, y)
	return nil, nil
}

func opMul(f *Frame) ([]byte, error) {
	x, y := f.Stack.pop(), f.Stack.peek()
	y.Mul(&x, y)
	return nil, nil
}

func opSub(f *Frame) ([]byte, error) {
	x, y := f.Stack.pop(), f.Stack.peek()
	y.Sub(&x, y)
	return nil, nil
}

func opDiv(f *Frame) ([]byte, error) {
	x, y := f.Stack.pop(), f.Stack.peek()
	y.Div(&x, y)
	return nil, nil
}

func opSdiv(f *Frame) ([]byte, error) {
	x, y := f.Stack.pop(), f.Stack.peek()
	y.SDiv(&x, y)
	return nil, nil
}

func opMod(f *Frame) ([]byte, error) {
	x, y := f.Stack.pop(), f.Stack.peek()
	y.Mod(&x, y)
	return nil, nil
}

func opSmod(f *Frame) ([]byte, error) {
	x, y := f.Stack.pop(), f.Stack.peek()
	y.SMod(&x, y)
	return nil, nil
}

func opAddMod(f *Frame) ([]byte, error) {
	x, y, z := f.Stack.pop(), f.Stack.pop(), f.Stack.peek()
	if z.IsZero() {
		z.Clear()
	} else {
		z.AddMod(&x, &y, z)
	}
	return nil, nil
}

func opMulMod(f *Frame) ([]byte, error) {
	x, y, z := f.Stack.pop(), f.Stack.pop(), f.Stack.peek()
	if z.IsZero() {
		z.Clear()
	} else {
		z.MulMod(&x, &y, z)
	}
	return nil, nil
}

func opExp(f *Frame) ([]byte, error) {
	base, exponent := f.Stack.pop(), f.Stack.peek()
	exponent.Exp(&base, exponent)
	return nil, nil
}

// opSignExtend implements SIGNEXTEND(b, x): if b >= 31 x is unchanged,
// otherwise x is sign-extended from bit 8*b+7 (spec §4.6).
func opSignExtend(f *Frame) ([]byte, error) {
	back, num := f.Stack.pop(), f.Stack.peek()
	num.ExtendSign(num, &back)
	return nil, nil
}
