// Package logger is the public API of nloggify. Most users only need to
// import this package.
//
// Configuration happens once. A Manager hands out a Builder from
// Configure, the builder collects sinks, and Build installs the resulting
// logger and seals the manager:
//
//	b, err := logger.Configure()
//	if err != nil {
//	    return err
//	}
//	_, err = b.WriteToConsole(nil).
//	    WriteToJSONFile(&fileCfg).
//	    Build()
//
// Each sink kind may be registered once unless the manager was created
// WithAllowMultipleSameSinks. A second Configure fails with
// ErrAlreadyConfigured unless WithAllowReconfiguration is set.
//
// Call sites hold the Logger returned by GetLogger. It is a Proxy that
// resolves the installed logger on every call; if nothing was configured
// the first call installs a console logger and prints a one-time advisory.
//
//	log := logger.GetLogger()
//	log.Log(logger.InfoLevel, "ready")
//	failed := log.LogException(logger.ErrorLevel, doWork, "doWork failed:")
//
// A Core writes to one sink under a mutex. With more than one sink Build
// returns a Multi, which writes each record to all sinks concurrently and
// returns once every sink is done. Level checks happen before any record
// is built, so filtered messages cost a single comparison.
//
// The package-level functions (Info, Errorf, ...) use the default manager.
// Tests should create their own Manager with NewManager.
package logger
