package dialect

import "testing"

func TestIsOpcode(t *testing.T) {
	yes := []string{"add", "jumpi", "dup1", "dup16", "swap9", "push0", "push32", "calldataload", "keccak256"}
	for _, name := range yes {
		if !IsOpcode(name) {
			t.Errorf("IsOpcode(%q) = false", name)
		}
	}
	no := []string{"ADD", "dup17", "swap0", "push33", "foo", "jumpif", ""}
	for _, name := range no {
		if IsOpcode(name) {
			t.Errorf("IsOpcode(%q) = true", name)
		}
	}
}

func TestClassification(t *testing.T) {
	if !IsConditionalJump("jumpi") || IsConditionalJump("jump") {
		t.Error("IsConditionalJump misclassifies")
	}
	if !IsUnconditionalJump("jump") || IsUnconditionalJump("jumpi") {
		t.Error("IsUnconditionalJump misclassifies")
	}
	if !IsDup("dup3") || IsDup("duplicate") {
		t.Error("IsDup misclassifies")
	}
	if !IsLoad("sload") || !IsLoad("mload") || IsLoad("sstore") {
		t.Error("IsLoad misclassifies")
	}
	if !IsStorageOp("sstore") || IsStorageOp("mstore") {
		t.Error("IsStorageOp misclassifies")
	}
	if !IsTerminator("revert") || !IsTerminator("return") || IsTerminator("jump") {
		t.Error("IsTerminator misclassifies")
	}
}
