// Package resize provides the orchestration logic for a single
// validate, inspect and resize run.
//
// # Runner
//
// The Runner drives one run through its states:
//
//	Idle -> Validating -> MetadataExtracted -> Resizing -> Done
//
// Any failure moves it to Failed and aborts the run. There are no retries
// and no cleanup of a partially written output.
//
// # Basic Usage
//
//	runner := resize.NewRunner(svc, log, func(event resize.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	if _, err := runner.Run(ctx, "photo.jpg", "/out", "100"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Progress Tracking
//
// Progress is reported via a callback function that receives ProgressEvent:
//
//	type ProgressEvent struct {
//	    Message string
//	    Level   ProgressLevel // Info, Verbose, Warning, Error, Success
//	}
//
// The metadata report is emitted as a single LevelInfo event whose message
// is the multi-line block produced by FormatReport.
package resize
