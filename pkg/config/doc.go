// Package config loads runtime configuration from CLFORGE_-prefixed
// environment variables, optionally seeded from dotenv files.
//
// Parsing is delegated to github.com/caarlos0/env/v11 and dotenv files are
// read with github.com/joho/godotenv.
//
// # Architecture
//
// Load is generic over the target struct. The first successful parse of a
// type is stored in a process-wide cache keyed by reflect.Type, so later
// calls are a map lookup and a copy. LoadEnv must run before the first Load
// of a type for the files to matter; variables already present in the
// environment always win over file values.
//
// Settings is the one configuration struct of the service. LoadSettings
// parses it and then checks it with pkg/validator.
//
// # Usage
//
//	if err := config.LoadEnv(".env.local"); err != nil {
//	    return err
//	}
//	settings, err := config.LoadSettings()
//	if err != nil {
//	    return err
//	}
//
// # Error Handling
//
// Failures wrap ErrParsingConfig, ErrLoadingEnvFile or ErrInvalidSettings;
// compare with errors.Is. A validation failure also carries
// validator.ValidationErrors.
//
// # Testing
//
// Call ResetCache after changing the environment so the next Load re-parses.
package config
