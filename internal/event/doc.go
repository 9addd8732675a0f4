// Package event provides a synchronous pub-sub bus that lets the registry
// and the manifest watcher report what happened without knowing who listens.
//
// # Events
//
//   - [TeamRegisteredEvent] ("team.registered"): a team joined a season
//   - [RegistrationRejectedEvent] ("team.rejected"): a registration failed
//   - [TemplatesReloadedEvent] ("templates.reloaded"): the catalog was reloaded from disk
//
// # Usage
//
//	bus := event.NewBus(logger.Slog())
//
//	event.On(bus, event.TypeTeamRegistered, func(e event.TeamRegisteredEvent) {
//	    fmt.Printf("%s joined %s\n", e.Team, e.Season)
//	})
//	bus.SubscribeAll(func(e event.Event) {
//	    logger.Debug("event", "type", e.EventType())
//	})
//
// Handlers run synchronously on the publishing goroutine. The Bus is safe for
// concurrent use, and a panicking handler is logged without stopping
// delivery to the others.
package event
