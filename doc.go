// Package tui runs multi-screen terminal applications as a stack of screens.
//
// An application lists its screens in a ScreenSet, usually generated by
// cmd/stackgen, and hands it to App.Run. The App owns the event loop: it
// draws the screen on top of the stack, feeds it terminal events, runs its
// background work and applies the navigation requests screens make through
// their Navigator (Push, Replace, Back, Clear, Restart, Exit and Redraw).
//
//	app, err := tui.NewWithState[ScreenID](State{})
//	if err != nil {
//	    return err
//	}
//	return app.Run(ctx, AppScreens{})
//
// Screens implement Screen and any of the optional lifecycle interfaces
// (Enterer, Exiter, Pauser, Resumer, Backgrounder). Every callback runs on the
// event loop goroutine, so screens and the application state need no locking
// unless a screen starts goroutines of its own; State covers that case.
package tui
