package evaluator

import "testing"

func TestLookupReturnsCopy(t *testing.T) {
	env := NewEnvironment()
	env.DefineLocal("xs", qx(num(1), num(2)))

	got := env.Lookup("xs").(*Qexpr)
	got.Elements[0] = num(99)

	again := env.Lookup("xs").(*Qexpr)
	if again.Elements[0].(*Integer).Value != 1 {
		t.Errorf("mutating a looked-up value leaked into the binding")
	}
}

func TestLookupWalksChain(t *testing.T) {
	root := NewEnvironment()
	root.DefineLocal("x", num(7))
	child := NewEnclosedEnvironment(root)

	got := child.Lookup("x")
	if !ObjectsEqual(got, num(7)) {
		t.Errorf("got %s, want 7", got.Inspect())
	}
}

func TestLookupUnbound(t *testing.T) {
	env := NewEnvironment()
	got := env.Lookup("nope")
	errObj, ok := got.(*Error)
	if !ok {
		t.Fatalf("expected Error value, got %T", got)
	}
	if errObj.Message != "unbound symbol 'nope'" {
		t.Errorf("wrong message: %q", errObj.Message)
	}
}

func TestDefineStoresCopy(t *testing.T) {
	env := NewEnvironment()
	val := qx(num(1))
	env.DefineLocal("xs", val)
	val.Elements[0] = num(99)

	got := env.Lookup("xs").(*Qexpr)
	if got.Elements[0].(*Integer).Value != 1 {
		t.Errorf("binding aliases the defined value")
	}
}

func TestReadOnlyRefusal(t *testing.T) {
	root := NewRootEnvironment()

	if refused := root.DefineLocal("head", num(1)); !refused {
		t.Error("overwriting a builtin in the read-only scope was not refused")
	}
	if got := root.Lookup("head"); got.Type() != BUILTIN_OBJ {
		t.Errorf("builtin binding was clobbered: %s", got.Inspect())
	}

	// New names are still accepted; only existing bindings are frozen.
	if refused := root.DefineLocal("fresh", num(1)); refused {
		t.Error("inserting a new name into the read-only scope was refused")
	}
}

func TestDefineGlobal(t *testing.T) {
	root := NewEnvironment()
	mid := NewEnclosedEnvironment(root)
	leaf := NewEnclosedEnvironment(mid)

	leaf.DefineGlobal("g", num(5))

	if got := root.Lookup("g"); !ObjectsEqual(got, num(5)) {
		t.Errorf("global define missed the root: %s", got.Inspect())
	}
	if _, ok := mid.store["g"]; ok {
		t.Error("global define wrote into an intermediate scope")
	}
}

// Global defines land in the outermost mutable scope, not in the read-only
// root above it, so user globals can be rebound while builtins cannot.
func TestDefineGlobalSkipsReadOnlyRoot(t *testing.T) {
	root := NewRootEnvironment()
	global := NewEnclosedEnvironment(root)
	leaf := NewEnclosedEnvironment(global)

	if refused := leaf.DefineGlobal("g", num(1)); refused {
		t.Fatal("defining a fresh global was refused")
	}
	if _, ok := global.store["g"]; !ok {
		t.Error("global define missed the outermost mutable scope")
	}
	if _, ok := root.store["g"]; ok {
		t.Error("global define wrote into the read-only root")
	}

	if refused := leaf.DefineGlobal("g", num(2)); refused {
		t.Fatal("rebinding a user global was refused")
	}
	if got := global.Lookup("g"); !ObjectsEqual(got, num(2)) {
		t.Errorf("rebinding did not overwrite: %s", got.Inspect())
	}

	if refused := leaf.DefineGlobal("head", num(1)); !refused {
		t.Error("overwriting a root builtin was not refused")
	}
}

func TestShadowing(t *testing.T) {
	root := NewEnvironment()
	root.DefineLocal("x", num(100))
	child := NewEnclosedEnvironment(root)
	child.DefineLocal("x", num(42))

	if got := child.Lookup("x"); !ObjectsEqual(got, num(42)) {
		t.Errorf("child scope does not shadow: %s", got.Inspect())
	}
	// The ancestor binding survives the shadow.
	if got := root.Lookup("x"); !ObjectsEqual(got, num(100)) {
		t.Errorf("ancestor binding disturbed: %s", got.Inspect())
	}
}

func TestEnvironmentCopy(t *testing.T) {
	root := NewEnvironment()
	env := NewEnclosedEnvironment(root)
	env.DefineLocal("xs", qx(num(1)))

	dup := env.Copy()
	if dup.Outer() != root {
		t.Error("copy lost the outer link")
	}

	env.DefineLocal("xs", qx(num(2)))
	if got := dup.Lookup("xs").(*Qexpr); got.Elements[0].(*Integer).Value != 1 {
		t.Errorf("copy shares bindings with the original")
	}
}

func TestSnapshot(t *testing.T) {
	root := NewEnvironment()
	root.DefineLocal("hidden", num(0))
	env := NewEnclosedEnvironment(root)
	env.DefineLocal("b", num(2))
	env.DefineLocal("a", num(1))

	snap := env.Snapshot()
	want := qx(
		qx(str("a"), num(1)),
		qx(str("b"), num(2)),
	)
	if !ObjectsEqual(snap, want) {
		t.Errorf("snapshot %s, want %s", snap.Inspect(), want.Inspect())
	}
}
