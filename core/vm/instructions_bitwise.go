package vm

// Comparison and bitwise opcodes (spec §4.6).

func opLt(f *Frame) ([]byte, error) {
	x, y := f.Stack.pop(), f.Stack.peek()
	if x.Lt(y) {
		y.SetOne()
	} else {
		y.Clear()
	}
	return nil, nil
}

func opGt(f *Frame) ([]byte, error) {
	x, y := f.Stack.pop(), f.Stack.peek()
	if x.Gt(y) {
		y.SetOne()
	} else {
		y.Clear()
	}
	return nil, nil
}

func opSlt(f *Frame) ([]byte, error) {
	x, y := f.Stack.pop(), f.Stack.peek()
	if x.Slt(y) {
		y.SetOne()
	} else {
		y.Clear()
	}
	return nil, nil
}

func opSgt(f *Frame) ([]byte, error) {
	x, y := f.Stack.pop(), f.Stack.peek()
	if x.Sgt(y) {
		y.SetOne()
	} else {
		y.Clear()
	}
	return nil, nil
}

func opEq(f *Frame) ([]byte, error) {
	x, y := f.Stack.pop(), f.Stack.peek()
	if x.Eq(y) {
		y.SetOne()
	} else {
		y.Clear()
	}
	return nil, nil
}

func opIsZero(f *Frame) ([]byte, error) {
	x := f.Stack.peek()
	if x.IsZero() {
		x.SetOne()
	} else {
		x.Clear()
	}
	return nil, nil
}

func opAnd(f *Frame) ([]byte, error) {
	x, y := f.Stack.pop(), f.Stack.peek()
	y.And(&x, y)
	return nil, nil
}

func opOr(f *Frame) ([]byte, error) {
	x, y := f.Stack.pop(), f.Stack.peek()
	y.Or(&x, y)
	return nil, nil
}

func opXor(f *Frame) ([]byte, error) {
	x, y := f.Stack.pop(), f.Stack.peek()
	y.Xor(&x, y)
	return nil, nil
}

func opNot(f *Frame) ([]byte, error) {
	x := f.Stack.peek()
	x.Not(x)
	return nil, nil
}

func opByte(f *Frame) ([]byte, error) {
	th, val := f.Stack.pop(), f.Stack.peek()
	val.Byte(&th)
	return nil, nil
}

func opShl(f *Frame) ([]byte, error) {
	shift, value := f.Stack.pop(), f.Stack.peek()
	if shift.LtUint64(256) {
		value.Lsh(value, uint(shift.Uint64()))
	} else {
		value.Clear()
	}
	return nil, nil
}

func opShr(f *Frame) ([]byte, error) {
	shift, value := f.Stack.pop(), f.Stack.peek()
	if shift.LtUint64(256) {
		value.Rsh(value, uint(shift.Uint64()))
	} else {
		value.Clear()
	}
	return nil, nil
}

func opSar(f *Frame) ([]byte, error) {
	shift, value := f.Stack.pop(), f.Stack.peek()
	if shift.GtUint64(256) {
		if value.Sign() >= 0 {
			value.Clear()
		} else {
			value.SetAllOne()
		}
		return nil, nil
	}
	value.SRsh(value, uint(shift.Uint64()))
	return nil, nil
}
