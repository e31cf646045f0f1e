package internal

// ApplicationName is the non-capitalized name of the application: it keys
// config file discovery and the environment variable prefix.
const ApplicationName = "fcb2b"
