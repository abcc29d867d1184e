package css_test

import (
	"testing"

	"go.uber.org/zap"

	"cssv/css"
)

func TestDeclParser_ParseDeclarations(t *testing.T) {
	p := css.NewDeclParser(zap.NewNop())

	input := []byte(`font-size: 2em; line-height: 1.45; letter-spacing: -0.5px; font-family: serif`)
	decls, warnings := p.ParseDeclarations(input)

	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
	if len(decls) != 4 {
		t.Fatalf("expected 4 declarations, got %d: %v", len(decls), decls)
	}

	want := []struct {
		property string
		numeric  bool
		value    css.Value
	}{
		{"font-size", true, css.Value{Value: 2, Unit: css.UnitEm}},
		{"line-height", true, css.Value{Value: 1.45, Unit: css.UnitNone}},
		{"letter-spacing", true, css.Value{Value: -0.5, Unit: css.UnitPx}},
		{"font-family", false, css.Value{}},
	}

	for i, w := range want {
		d := decls[i]
		if d.Property != w.property {
			t.Errorf("decl %d property = %q, want %q", i, d.Property, w.property)
		}
		if d.Numeric != w.numeric {
			t.Errorf("decl %d numeric = %v, want %v", i, d.Numeric, w.numeric)
		}
		if d.Numeric && d.Value != w.value {
			t.Errorf("decl %d value = %v, want %v", i, d.Value, w.value)
		}
	}
}

func TestDeclParser_Percentage(t *testing.T) {
	p := css.NewDeclParser(nil)

	decls, _ := p.ParseDeclarations([]byte(`font-size: 150%`))
	if len(decls) != 1 {
		t.Fatalf("expected 1 declaration, got %d", len(decls))
	}
	if !decls[0].Numeric {
		t.Fatal("expected numeric declaration")
	}
	if decls[0].Value != (css.Value{Value: 150, Unit: css.UnitPercent}) {
		t.Errorf("value = %v, want 150%%", decls[0].Value)
	}
}

func TestDeclParser_UnsupportedUnit(t *testing.T) {
	p := css.NewDeclParser(nil)

	decls, warnings := p.ParseDeclarations([]byte(`transition-duration: 5s`))
	if len(decls) != 1 {
		t.Fatalf("expected 1 declaration, got %d", len(decls))
	}
	if decls[0].Numeric {
		t.Error("time value should not be treated as numeric")
	}
	if decls[0].Raw != "5s" {
		t.Errorf("raw = %q, want \"5s\"", decls[0].Raw)
	}
	if len(warnings) == 0 {
		t.Error("expected a warning for unsupported unit")
	}
}

func TestDeclParser_MultiValueAndCase(t *testing.T) {
	p := css.NewDeclParser(nil)

	decls, _ := p.ParseDeclarations([]byte(`MARGIN: 1px 2px; Font-Size: 14PX`))
	if len(decls) != 2 {
		t.Fatalf("expected 2 declarations, got %d", len(decls))
	}
	if decls[0].Property != "margin" || decls[0].Numeric {
		t.Errorf("multi-value declaration parsed as %+v", decls[0])
	}
	if decls[1].Property != "font-size" || !decls[1].Numeric {
		t.Errorf("declaration parsed as %+v", decls[1])
	}
	if decls[1].Value.Unit != css.UnitPx {
		t.Errorf("unit = %v, want px", decls[1].Value.Unit)
	}
}

func TestDeclParser_Empty(t *testing.T) {
	p := css.NewDeclParser(nil)

	decls, warnings := p.ParseDeclarations(nil)
	if len(decls) != 0 {
		t.Errorf("expected no declarations, got %v", decls)
	}
	if len(warnings) != 0 {
		t.Errorf("expected no warnings, got %v", warnings)
	}
}
