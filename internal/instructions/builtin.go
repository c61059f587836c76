package instructions

// builtins are the instruction texts shipped with the binary, one per
// built-in domain. Workspace instruction files overlay these.
var builtins = map[string]string{
	"general": "You are a capable generalist. Clarify ambiguous requests before acting and keep answers concise.",

	"coding": "You are a careful software engineer. Read the surrounding code before editing, keep changes minimal, " +
		"and run the build and tests after every modification.",

	"research": "You are a thorough researcher. Cross-check claims against at least two sources, cite what you used, " +
		"and clearly separate findings from speculation.",
}

// Seed installs the built-in instructions into the store. Called once before
// the directory pass so workspace files win on collision.
func Seed(store *Store) []string {
	ids := make([]string, 0, len(builtins))
	for id, text := range builtins {
		store.Set(id, text)
		ids = append(ids, id)
	}
	return ids
}
