package ir

import (
	"math"
	"testing"
)

func TestFromKeyValsOrder(t *testing.T) {
	obj := FromKeyVals([]KeyVal{
		{Key: FromString("b"), Val: FromInt(2)},
		{Key: FromString("a"), Val: FromInt(1)},
	})
	if len(obj.Fields) != 2 {
		t.Fatalf("got %d fields want 2", len(obj.Fields))
	}
	if obj.Fields[0].String != "b" || obj.Fields[1].String != "a" {
		t.Errorf("got field order %q, %q", obj.Fields[0].String, obj.Fields[1].String)
	}
	if v := Get(obj, "a"); v == nil || *v.Int64 != 1 {
		t.Errorf("got %v want 1", v)
	}
	if v := Get(obj, "missing"); v != nil {
		t.Errorf("got %v want nil", v)
	}
}

func TestPutFieldPreservesOrder(t *testing.T) {
	obj := &Node{Type: ObjectType}
	PutField(obj, "z", FromInt(26))
	PutField(obj, "a", FromInt(1))
	if obj.Fields[0].String != "z" || obj.Fields[1].String != "a" {
		t.Errorf("got field order %q, %q", obj.Fields[0].String, obj.Fields[1].String)
	}
	if obj.Values[1].Parent != obj || obj.Values[1].ParentIndex != 1 {
		t.Error("parent links not set")
	}
}

func TestAppend(t *testing.T) {
	arr := &Node{Type: ArrayType}
	Append(arr, FromString("x"))
	Append(arr, FromString("y"))
	if len(arr.Values) != 2 || arr.Values[1].ParentIndex != 1 {
		t.Errorf("got %d values", len(arr.Values))
	}
}

func TestFromUint(t *testing.T) {
	if v := FromUint(42); v.Int64 == nil || *v.Int64 != 42 {
		t.Errorf("got %v want 42", v)
	}
	big := FromUint(math.MaxUint64)
	if big.Int64 != nil {
		t.Error("expected string fallback for out-of-range value")
	}
	if big.Number != "18446744073709551615" {
		t.Errorf("got %q", big.Number)
	}
}

func TestClone(t *testing.T) {
	obj := FromKeyVals([]KeyVal{
		{Key: FromString("list"), Val: FromSlice([]*Node{FromBool(true), Null()})},
	})
	dup := obj.Clone()
	dup.Values[0].Values[0].Bool = false
	if !obj.Values[0].Values[0].Bool {
		t.Error("clone aliases original")
	}
}

func TestVisit(t *testing.T) {
	obj := FromKeyVals([]KeyVal{
		{Key: FromString("list"), Val: FromSlice([]*Node{FromInt(1), FromInt(2)})},
	})
	count := 0
	err := obj.Visit(func(y *Node, isPost bool) (bool, error) {
		if !isPost {
			count++
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	// object, array, two numbers
	if count != 4 {
		t.Errorf("got %d visits want 4", count)
	}
}
