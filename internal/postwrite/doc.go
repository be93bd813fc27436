// Package postwrite runs the steps that follow file generation: git
// initialisation, dependency install and the package scripts.
//
// Every step here is best effort. A failing step is logged and recorded in
// the Report; it never undoes files that were already written and never
// makes the run fail.
//
// Example:
//
//	o := postwrite.New(exec.NewExecutor(&exec.Options{Dir: dest}), postwrite.Options{
//		Managers: []string{"yarn", "npm"},
//		Install:  true,
//	})
//	report := o.Finalize(ctx, record)
//	for _, err := range report.Errors {
//		output.Warn(err.Error())
//	}
package postwrite
