// Package screengen generates screen sets for the tui screen stack.
//
// The input is a Go struct whose fields list every screen kind of an
// application, one field per screen:
//
//	type AppScreens struct {
//	    Home HomeScreen
//	    List *ListScreen
//	}
//
// From it the generator writes an ID enum with one constant per field, a
// String method for the enum, and New and Default methods on the struct so
// that it satisfies tui.ScreenSet. New returns a freshly allocated screen of
// the field's type; Default returns the first field's screen unless another
// one is named.
package screengen
