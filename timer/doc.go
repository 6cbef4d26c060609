// Package timer measures a scope of code and reports its wall-clock duration.
//
// The report is a single line such as "loading: 1 minute and 18 seconds" written
// to os.Stderr unless another writer is configured:
//
//	t := timer.Start("loading")
//	defer t.Stop()
package timer
