// Package ahk drives Windows desktop automation through a long-lived
// AutoHotkey daemon process.
//
// An Engine launches the AutoHotkey interpreter with a bootstrap daemon
// script, keeps it alive for the life of the engine, and exchanges commands
// with it over the process's stdin and stdout. Commands cover mouse and
// keyboard synthesis, window management, and screen queries.
//
// # Basic Usage
//
//	ctx := context.Background()
//
//	engine := ahk.New()
//	defer engine.Close()
//
//	if err := engine.MouseMove(ctx, 100, 200, 10, false); err != nil {
//	    log.Fatal(err)
//	}
//
//	pos, err := engine.MousePosition(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("cursor at %d,%d\n", pos.X, pos.Y)
//
// # Windows
//
// Window operations take a WinSpec describing which window to target, or a
// Window handle pinned to a specific hwnd:
//
//	win, err := engine.WinGet(ctx, ahk.WinSpec{Title: "Untitled - Notepad"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := win.Activate(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	if err := win.Move(ctx, 0, 0, 800, 600); err != nil {
//	    log.Fatal(err)
//	}
//
// # Non-Blocking Calls
//
// Engine.Async exposes the same operations as futures:
//
//	future := engine.Async().WinGetTitle(ctx, ahk.WinSpec{Title: "ahk_class Notepad"})
//	// ... other work ...
//	title, err := future.Result(ctx)
//
// # Logging
//
// Engines are silent by default. For detailed operation tracking, use
// WithLogger:
//
//	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
//	engine := ahk.New(ahk.WithLogger(logger))
//
// # Error Handling
//
// Typed errors distinguish failure scenarios:
//
//	_, err := engine.WinGetTitle(ctx, ahk.WinSpec{Title: "No Such Window"})
//	if err != nil {
//	    var execErr *ahk.ExecutionError
//	    if errors.As(err, &execErr) {
//	        // the interpreter rejected the command
//	    }
//	    var crashErr *ahk.DaemonCrashedError
//	    if errors.As(err, &crashErr) {
//	        log.Fatalf("daemon exited (code %d): %s", crashErr.ExitCode, crashErr.Stderr)
//	    }
//	}
//
// # Requirements
//
// The AutoHotkey interpreter must be installed. It is discovered via the
// AHK_PATH environment variable, PATH, and the default install location; use
// WithExecutablePath to point at a specific binary. The daemon script path
// defaults to "daemon.ahk" in the working directory and is set with
// WithScriptPath.
package ahk
