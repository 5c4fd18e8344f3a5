package cipher

import (
	"context"
	"testing"
)

// mockOperation is a test implementation of Operation
type mockOperation struct {
	BaseOperation
}

func (m *mockOperation) Execute(ctx context.Context, input []byte, params map[string]interface{}) ([]byte, error) {
	return input, nil
}

func newMock(name string, opType OperationType) *mockOperation {
	return &mockOperation{
		BaseOperation: BaseOperation{
			NameValue:        name,
			TypeValue:        opType,
			DescriptionValue: "Mock operation for testing",
		},
	}
}

func TestRegistryRegister(t *testing.T) {
	reg := NewRegistry()
	op := newMock("mock", OperationTypeEncode)

	if err := reg.Register(op); err != nil {
		t.Fatalf("failed to register operation: %v", err)
	}
	if err := reg.Register(op); err == nil {
		t.Fatal("expected error when registering duplicate operation")
	}
	if err := reg.Register(nil); err == nil {
		t.Fatal("expected error when registering nil operation")
	}
	if err := reg.Register(newMock("", OperationTypeEncode)); err == nil {
		t.Fatal("expected error when registering unnamed operation")
	}
}

func TestRegistryGetAndUnregister(t *testing.T) {
	reg := NewRegistry()
	_ = reg.Register(newMock("test-op", OperationTypeDecode))

	op, ok := reg.Get("test-op")
	if !ok {
		t.Fatal("expected operation to be found")
	}
	if op.Description() != "Mock operation for testing" {
		t.Errorf("unexpected description %q", op.Description())
	}

	reg.Unregister("test-op")
	if _, ok := reg.Get("test-op"); ok {
		t.Fatal("expected operation to be removed")
	}
}

func TestRegistryList(t *testing.T) {
	reg := NewRegistry()
	_ = reg.Register(newMock("zeta", OperationTypeEncode))
	_ = reg.Register(newMock("alpha", OperationTypeDecode))
	_ = reg.Register(newMock("mid", OperationTypeEncode))

	all := reg.List()
	if len(all) != 3 || all[0].Name() != "alpha" || all[2].Name() != "zeta" {
		t.Fatalf("expected sorted operations, got %v", names(all))
	}

	encoders := reg.List(OperationTypeEncode)
	if len(encoders) != 2 || encoders[0].Name() != "mid" {
		t.Fatalf("expected encode operations only, got %v", names(encoders))
	}
}

func TestDefaultRegistryOperations(t *testing.T) {
	for _, name := range []string{"base64_encode", "base64_decode", "culture_encode", "culture_decode"} {
		op, ok := GetOperation(name)
		if !ok {
			t.Fatalf("expected %s to be registered", name)
		}
		reverse, ok := op.Reverse()
		if !ok {
			t.Fatalf("expected %s to be reversible", name)
		}
		back, _ := reverse.Reverse()
		if back.Name() != name {
			t.Fatalf("expected reverse of reverse of %s to be itself, got %s", name, back.Name())
		}
	}
	if got := len(ListOperations(OperationTypeDecode)); got != 2 {
		t.Fatalf("expected 2 decode operations, got %d", got)
	}
}

func names(ops []Operation) []string {
	out := make([]string, len(ops))
	for i, op := range ops {
		out[i] = op.Name()
	}
	return out
}
