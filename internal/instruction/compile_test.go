package instruction

import (
	"reflect"
	"testing"
)

func TestCompileBinaryStep(t *testing.T) {
	syms, err := Compile([]Step{{Op: OpAdd, A: 2, B: 3}})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	want := []Symbol{"2", SymAdd, "3", SymEvaluate}
	if !reflect.DeepEqual(syms, want) {
		t.Fatalf("expected %v, got %v", want, syms)
	}
}

func TestCompileMultiDigitOperands(t *testing.T) {
	syms, err := Compile([]Step{{Op: OpSubtract, A: 20, B: 10}})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	want := []Symbol{"2", "0", SymSubtract, "1", "0", SymEvaluate}
	if !reflect.DeepEqual(syms, want) {
		t.Fatalf("expected %v, got %v", want, syms)
	}
}

func TestCompileChainWithUnaryStep(t *testing.T) {
	syms, err := Compile([]Step{
		{Op: OpAdd, A: 2, B: 3},
		{Op: OpSquare},
	})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	// The evaluate press commits the binary step before the function key;
	// nothing follows the function key, it commits on its own.
	want := []Symbol{"2", SymAdd, "3", SymEvaluate, SymSquare}
	if !reflect.DeepEqual(syms, want) {
		t.Fatalf("expected %v, got %v", want, syms)
	}
}

func TestCompileZeroOperand(t *testing.T) {
	syms, err := Compile([]Step{{Op: OpMultiply, A: 0, B: 25}})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	want := []Symbol{"0", SymMultiply, "2", "5", SymEvaluate}
	if !reflect.DeepEqual(syms, want) {
		t.Fatalf("expected %v, got %v", want, syms)
	}
}

func TestCompileRejectsMalformedSteps(t *testing.T) {
	if _, err := Compile([]Step{{Op: "modulo", A: 1, B: 2}}); err == nil {
		t.Fatal("expected error for unknown operation")
	}

	if _, err := Compile([]Step{{Op: OpAdd, A: -1, B: 2}}); err == nil {
		t.Fatal("expected error for negative operand")
	}
}

func TestCompileEndToEnd(t *testing.T) {
	steps, err := Parse("Add 2 and 3 and then find the square of the result")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	syms, err := Compile(steps)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	want := []Symbol{"2", SymAdd, "3", SymEvaluate, SymSquare}
	if !reflect.DeepEqual(syms, want) {
		t.Fatalf("expected %v, got %v", want, syms)
	}
}
