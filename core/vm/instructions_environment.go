package vm

import (
	"math/big"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
)

func pushAddress(f *Frame, addr [20]byte) {
	var w uint256.Int
	w.SetBytes(addr[:])
	f.Stack.push(&w)
}

func pushBigInt(f *Frame, v *big.Int) {
	var w uint256.Int
	w.SetFromBig(v)
	f.Stack.push(&w)
}

func opKeccak256(f *Frame) ([]byte, error) {
	offset, length := f.Stack.pop(), f.Stack.peek()
	data := f.Memory.Read(offset.Uint64(), length.Uint64())
	hash := crypto.Keccak256(data)
	length.SetBytes(hash)
	return nil, nil
}

func opAddress(f *Frame) ([]byte, error) {
	pushAddress(f, f.Env.Address)
	return nil, nil
}

func opBalance(f *Frame) ([]byte, error) {
	addr := f.Stack.peek()
	a := addressFromWord(addr)
	f.Sub.Touch(a)
	bal := f.Env.AccountView.GetBalance(a)
	addr.Set(bal)
	return nil, nil
}

func opOrigin(f *Frame) ([]byte, error) {
	pushAddress(f, f.Env.Origin)
	return nil, nil
}

func opCaller(f *Frame) ([]byte, error) {
	pushAddress(f, f.Env.Caller)
	return nil, nil
}

func opCallValue(f *Frame) ([]byte, error) {
	var w uint256.Int
	w.Set(f.Env.Value)
	f.Stack.push(&w)
	return nil, nil
}

func opCallDataLoad(f *Frame) ([]byte, error) {
	offset := f.Stack.peek()
	data := ReadZeroed(f.Env.Input, offset.Uint64(), 32)
	offset.SetBytes(data)
	return nil, nil
}

func opCallDataSize(f *Frame) ([]byte, error) {
	var w uint256.Int
	w.SetUint64(uint64(len(f.Env.Input)))
	f.Stack.push(&w)
	return nil, nil
}

func opCallDataCopy(f *Frame) ([]byte, error) {
	destOffset, offset, length := f.Stack.pop(), f.Stack.pop(), f.Stack.pop()
	data := ReadZeroed(f.Env.Input, offset.Uint64(), length.Uint64())
	f.Memory.Write(destOffset.Uint64(), data)
	return nil, nil
}

func opCodeSize(f *Frame) ([]byte, error) {
	var w uint256.Int
	w.SetUint64(uint64(len(f.Env.Code)))
	f.Stack.push(&w)
	return nil, nil
}

func opCodeCopy(f *Frame) ([]byte, error) {
	destOffset, offset, length := f.Stack.pop(), f.Stack.pop(), f.Stack.pop()
	data := ReadZeroed(f.Env.Code, offset.Uint64(), length.Uint64())
	f.Memory.Write(destOffset.Uint64(), data)
	return nil, nil
}

func opGasPrice(f *Frame) ([]byte, error) {
	var w uint256.Int
	w.Set(f.Env.GasPrice)
	f.Stack.push(&w)
	return nil, nil
}

func opExtCodeSize(f *Frame) ([]byte, error) {
	addr := f.Stack.peek()
	a := addressFromWord(addr)
	f.Sub.Touch(a)
	code := f.Env.AccountView.GetCode(a)
	addr.SetUint64(uint64(len(code)))
	return nil, nil
}

func opExtCodeCopy(f *Frame) ([]byte, error) {
	addrW, destOffset, offset, length := f.Stack.pop(), f.Stack.pop(), f.Stack.pop(), f.Stack.pop()
	a := addressFromWord(&addrW)
	f.Sub.Touch(a)
	code := f.Env.AccountView.GetCode(a)
	data := ReadZeroed(code, offset.Uint64(), length.Uint64())
	f.Memory.Write(destOffset.Uint64(), data)
	return nil, nil
}

func opReturnDataSize(f *Frame) ([]byte, error) {
	var w uint256.Int
	w.SetUint64(uint64(len(f.LastReturnData)))
	f.Stack.push(&w)
	return nil, nil
}

func opReturnDataCopy(f *Frame) ([]byte, error) {
	destOffset, offset, length := f.Stack.pop(), f.Stack.pop(), f.Stack.pop()
	data := ReadZeroed(f.LastReturnData, offset.Uint64(), length.Uint64())
	f.Memory.Write(destOffset.Uint64(), data)
	return nil, nil
}

func opExtCodeHash(f *Frame) ([]byte, error) {
	addr := f.Stack.peek()
	a := addressFromWord(addr)
	f.Sub.Touch(a)
	if !f.Env.AccountView.AccountExists(a) || f.Env.AccountView.EmptyAccount(a) {
		addr.Clear()
		return nil, nil
	}
	h := f.Env.AccountView.GetCodeHash(a)
	addr.SetBytes(h[:])
	return nil, nil
}

func opBlockHash(f *Frame) ([]byte, error) {
	num := f.Stack.peek()
	header := f.Env.BlockView.GetBlockHeader()
	diff := new(big.Int).Sub(header.Number, num.ToBig())
	if diff.Sign() <= 0 || diff.BitLen() > 64 || diff.Uint64() > 256 {
		num.Clear()
		return nil, nil
	}
	ancestor := f.Env.BlockView.GetAncestorHeader(diff.Uint64())
	if ancestor == nil {
		num.Clear()
		return nil, nil
	}
	num.SetBytes(ancestorHashPlaceholder(ancestor))
	return nil, nil
}

// ancestorHashPlaceholder derives the 32-byte value BLOCKHASH exposes for an
// ancestor header. The core does not own block hashing (that is the
// consensus layer's concern — spec §1 "out of scope"); it is keyed here off
// the header's number so that distinct ancestors are guaranteed to differ.
func ancestorHashPlaceholder(h *Header) []byte {
	return crypto.Keccak256(h.Number.Bytes())
}

func opCoinbase(f *Frame) ([]byte, error) {
	header := f.Env.BlockView.GetBlockHeader()
	pushAddress(f, header.Beneficiary)
	return nil, nil
}

func opTimestamp(f *Frame) ([]byte, error) {
	var w uint256.Int
	w.SetUint64(f.Env.BlockView.GetBlockHeader().Timestamp)
	f.Stack.push(&w)
	return nil, nil
}

func opNumber(f *Frame) ([]byte, error) {
	pushBigInt(f, f.Env.BlockView.GetBlockHeader().Number)
	return nil, nil
}

func opDifficulty(f *Frame) ([]byte, error) {
	pushBigInt(f, f.Env.BlockView.GetBlockHeader().Difficulty)
	return nil, nil
}

func opGasLimit(f *Frame) ([]byte, error) {
	var w uint256.Int
	w.SetUint64(f.Env.BlockView.GetBlockHeader().GasLimit)
	f.Stack.push(&w)
	return nil, nil
}
