package arguably

import "github.com/dmulholl/arguably/core"

// New creates an empty schema node.
//
// Automatic "help" and "version" boolean flags are injected with "h" and
// "v" shortcuts. Registering a flag or option that reuses one of those
// long names or shortcuts overrides the automatic declaration without
// error; any other collision within the node's namespace is a declaration
// error surfaced by Parse.
//
// Usage:
//
//	schema := arguably.New().
//	    Flag("force", "f").
//	    RequiredOption("config", "c").
//	    MultiOption("tag", "t").
//	    Variadic("files")
//
//	result, err := schema.Parse()
//	if err != nil {
//	    fmt.Fprintln(os.Stderr, "Error:", err)
//	    os.Exit(1)
//	}
var New = core.New
