// Package logging provides structured JSON logging for the league tools.
//
// It wraps log/slog. Records go to {dir}/league.log when a log directory is
// configured, otherwise to stderr.
//
// # Context
//
// Child loggers carry the registration context so every record can be
// filtered after the fact:
//
//	logger, err := logging.NewLogger(cfg.Logging.Dir, cfg.Logging.Level)
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	log := logger.WithSeason("2026A").WithDivision("Youth").WithTeam("Leones FC")
//	log.Info("team registered", "players", 18)
//
// Children share the parent's output. Closing any of them closes the file
// for all.
//
// # Levels
//
// DEBUG, INFO, WARN and ERROR, matched case-insensitively. Unknown levels
// fall back to INFO. [NopLogger] discards everything and is the default for
// components constructed without a logger.
package logging
