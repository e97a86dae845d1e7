// Package download provides the orchestration logic for resolving and
// fetching every entry of a manifest from a project registry.
//
// # Manager
//
// The Manager runs each RequestItem end to end:
//
//  1. Search the registry for the project
//  2. List its releases (narrowed to the target version first, if enabled)
//  3. Resolve a compatible release and file
//  4. Skip the item if the destination already exists
//  5. Stream the file into place, verifying its published hash
//
// # Basic Usage
//
//	registry := modrinth.NewClient(settings)
//	manager := download.NewManager(settings, registry, func(event download.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	summary, outcomes := manager.Run(ctx, items, "1.21.1")
//	fmt.Printf("%d downloaded, %d skipped, %d failed\n",
//	    summary.Succeeded, summary.Skipped, summary.Failed)
//
// # Concurrency
//
// Items run on a bounded pool of settings.MaxConcurrency workers. Items are
// independent: a failure is recorded in that item's Outcome and never stops
// the others.
//
// # Outcomes
//
// Every item yields exactly one Outcome tagged with an OutcomeKind:
//
//	OutcomeSucceeded          file fetched and placed
//	OutcomeSkipped            destination already existed
//	OutcomePlanned            dry run, nothing fetched
//	OutcomeLookupFailure      Err wraps ErrLookup
//	OutcomeResolutionFailure  Err wraps ErrResolution and a resolver sentinel
//	OutcomeTransportFailure   Err wraps ErrTransport
//
// # Progress Tracking
//
// Progress is reported via a callback function that receives ProgressEvent:
//
//	type ProgressEvent struct {
//	    Message string
//	    Level   ProgressLevel // Info, Verbose, Warning, Error, Success
//	    Item    *model.RequestItem
//	}
//
// Failures are not retried.
package download
