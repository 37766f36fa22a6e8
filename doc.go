// Package fluxreg provides a registry of declarative workflow definitions.
//
// Definitions are discovered from YAML files (*.workflows.yaml and
// *.workflow_groups.yaml), validated against their groups and installed as an
// immutable snapshot that presentation layers query for categories, sorted
// and grouped definition lists:
//
//	srv := fluxreg.New(fluxreg.WithLocations("/etc/workflows"))
//	if _, err := srv.Load(ctx); err != nil {
//		return err
//	}
//	for _, bucket := range srv.Registry().GroupedDefinitions(nil) {
//		fmt.Println(bucket.Label, len(bucket.Definitions))
//	}
//	wf, err := srv.Instantiate(ctx, "order_default")
//
// Reload invalidates the cached set and installs a fresh one atomically; a
// strict reload keeps the previous set when any definition is rejected.
package fluxreg
