package schema

// MergeSchemas combines a workspace root schema with an app schema into one
// ordered, override-aware schema.
//
// Root definitions come first, in root order. App-only definitions are
// appended afterward, in app order. An app definition sharing a name with a
// root definition replaces it wholesale (every field, not a field-by-field
// merge) while keeping the root's position in the sequence. Merging an
// already-merged schema with the same app schema is a no-op.
func MergeSchemas(root, app Schema) Schema {
	merged := make(Schema, 0, len(root)+len(app))
	index := make(map[string]int, len(root)+len(app))

	for _, def := range root {
		if i, seen := index[def.Name]; seen {
			merged[i] = def
			continue
		}
		index[def.Name] = len(merged)
		merged = append(merged, def)
	}

	for _, def := range app {
		if i, seen := index[def.Name]; seen {
			merged[i] = def
			continue
		}
		index[def.Name] = len(merged)
		merged = append(merged, def)
	}

	return merged
}

// AppSchema composes MergeSchemas with the ignore sets plugins declare.
// A variable named in any plugin's ignore-missing list is dropped from the
// returned schema entirely: it is never resolved and never reported missing.
func AppSchema(root, app Schema, ignored []string) Schema {
	merged := MergeSchemas(root, app)
	if len(ignored) == 0 {
		return merged
	}

	skip := make(map[string]struct{}, len(ignored))
	for _, name := range ignored {
		skip[name] = struct{}{}
	}

	out := make(Schema, 0, len(merged))
	for _, def := range merged {
		if _, drop := skip[def.Name]; drop {
			continue
		}
		out = append(out, def)
	}
	return out
}
