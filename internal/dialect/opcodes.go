package dialect

import "strings"

// The dialect targets the EVM instruction set. Mnemonics are the lowercase
// names an assembler accepts inside macro bodies; literals act as implicit
// pushes and are not listed here.
var opcodes = map[string]struct{}{
	"stop": {}, "add": {}, "mul": {}, "sub": {}, "div": {}, "sdiv": {},
	"mod": {}, "smod": {}, "addmod": {}, "mulmod": {}, "exp": {},
	"signextend": {}, "lt": {}, "gt": {}, "slt": {}, "sgt": {}, "eq": {},
	"iszero": {}, "and": {}, "or": {}, "xor": {}, "not": {}, "byte": {},
	"shl": {}, "shr": {}, "sar": {}, "sha3": {}, "keccak256": {},
	"address": {}, "balance": {}, "origin": {}, "caller": {},
	"callvalue": {}, "calldataload": {}, "calldatasize": {},
	"calldatacopy": {}, "codesize": {}, "codecopy": {}, "gasprice": {},
	"extcodesize": {}, "extcodecopy": {}, "returndatasize": {},
	"returndatacopy": {}, "extcodehash": {}, "blockhash": {},
	"coinbase": {}, "timestamp": {}, "number": {}, "prevrandao": {},
	"difficulty": {}, "gaslimit": {}, "chainid": {}, "selfbalance": {},
	"basefee": {}, "pop": {}, "mload": {}, "mstore": {}, "mstore8": {},
	"sload": {}, "sstore": {}, "jump": {}, "jumpi": {}, "pc": {},
	"msize": {}, "gas": {}, "jumpdest": {}, "tload": {}, "tstore": {},
	"mcopy": {}, "push0": {}, "create": {}, "call": {}, "callcode": {},
	"return": {}, "delegatecall": {}, "create2": {}, "staticcall": {},
	"revert": {}, "invalid": {}, "selfdestruct": {},
	"log0": {}, "log1": {}, "log2": {}, "log3": {}, "log4": {},
}

func init() {
	for i := 1; i <= 16; i++ {
		opcodes[indexed("dup", i)] = struct{}{}
		opcodes[indexed("swap", i)] = struct{}{}
	}
	for i := 1; i <= 32; i++ {
		opcodes[indexed("push", i)] = struct{}{}
	}
}

func indexed(base string, n int) string {
	// small n, быстрее чем strconv
	if n < 10 {
		return base + string(rune('0'+n))
	}
	return base + string(rune('0'+n/10)) + string(rune('0'+n%10))
}

// IsOpcode reports whether name is a known instruction mnemonic.
func IsOpcode(name string) bool {
	_, ok := opcodes[name]
	return ok
}

// IsConditionalJump reports whether the mnemonic is 'jumpi'.
func IsConditionalJump(name string) bool { return name == "jumpi" }

// IsUnconditionalJump reports whether the mnemonic is 'jump'.
func IsUnconditionalJump(name string) bool { return name == "jump" }

// IsJump reports either jump form.
func IsJump(name string) bool {
	return IsConditionalJump(name) || IsUnconditionalJump(name)
}

// IsDup reports whether the mnemonic is a dupN duplication.
func IsDup(name string) bool {
	return strings.HasPrefix(name, "dup") && IsOpcode(name)
}

// IsSwap reports whether the mnemonic is a swapN exchange.
func IsSwap(name string) bool {
	return strings.HasPrefix(name, "swap") && IsOpcode(name)
}

// IsLoad reports whether the mnemonic reads storage or memory onto the stack.
func IsLoad(name string) bool {
	return name == "sload" || name == "mload" || name == "tload"
}

// IsStorageOp reports whether the mnemonic touches contract storage.
func IsStorageOp(name string) bool {
	return name == "sload" || name == "sstore"
}

// IsMemoryOp reports whether the mnemonic touches memory.
func IsMemoryOp(name string) bool {
	switch name {
	case "mload", "mstore", "mstore8", "mcopy":
		return true
	default:
		return false
	}
}

// IsTerminator reports whether the mnemonic ends execution.
func IsTerminator(name string) bool {
	switch name {
	case "stop", "return", "revert", "invalid", "selfdestruct":
		return true
	default:
		return false
	}
}

// StorageBuiltin is the builtin a constant declaration may call instead of a
// literal value; a constant initialized with it always names a storage slot.
const StorageBuiltin = "FREE_STORAGE_POINTER"
