package schema

import (
	"reflect"
	"testing"
)

func def(name, example string) VariableDefinition {
	return VariableDefinition{
		Name:         name,
		ExampleValue: example,
		Requirement:  RequirementRequired,
		Directive:    Directive{Type: DirectivePlaceholder},
	}
}

func TestMergeSchemasOrder(t *testing.T) {
	root := Schema{def("A", "root-a"), def("B", "root-b")}
	app := Schema{def("A", "app-a"), def("C", "app-c")}

	merged := MergeSchemas(root, app)

	wantOrder := []string{"A", "B", "C"}
	if !reflect.DeepEqual(merged.Names(), wantOrder) {
		t.Fatalf("order = %v, want %v", merged.Names(), wantOrder)
	}

	// The app definition replaces the root one wholesale, at the root's position.
	if merged[0].ExampleValue != "app-a" {
		t.Errorf("A.ExampleValue = %q, want %q", merged[0].ExampleValue, "app-a")
	}
}

func TestMergeSchemasReplacesAllFields(t *testing.T) {
	root := Schema{{
		Name:         "TOKEN",
		ExampleValue: "root-example",
		Requirement:  RequirementRequired,
		Directive:    Directive{Type: DirectivePrompt},
		Description:  "root description",
	}}
	app := Schema{{
		Name:        "TOKEN",
		Requirement: RequirementOptional,
		Directive:   Directive{Type: DirectiveDefault, DefaultValue: "x"},
	}}

	merged := MergeSchemas(root, app)
	if len(merged) != 1 {
		t.Fatalf("len = %d, want 1", len(merged))
	}
	if !reflect.DeepEqual(merged[0], app[0]) {
		t.Errorf("merged definition = %+v, want the app definition verbatim %+v", merged[0], app[0])
	}
}

func TestMergeSchemasIdempotent(t *testing.T) {
	root := Schema{def("A", "1"), def("B", "2")}
	app := Schema{def("A", "override"), def("C", "3")}

	once := MergeSchemas(root, app)
	twice := MergeSchemas(once, app)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("re-merge changed the schema:\nonce:  %v\ntwice: %v", once.Names(), twice.Names())
	}
}

func TestAppSchemaDropsIgnored(t *testing.T) {
	root := Schema{def("A", "1"), def("B", "2")}
	app := Schema{def("C", "3")}

	got := AppSchema(root, app, []string{"B"})
	want := []string{"A", "C"}
	if !reflect.DeepEqual(got.Names(), want) {
		t.Errorf("names = %v, want %v", got.Names(), want)
	}
}

func TestSchemaValidate(t *testing.T) {
	if err := (Schema{def("A", ""), def("B", "")}).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := (Schema{def("A", ""), def("A", "")}).Validate(); err == nil {
		t.Error("expected duplicate-name error")
	}
	if err := (Schema{def("", "")}).Validate(); err == nil {
		t.Error("expected empty-name error")
	}
}
