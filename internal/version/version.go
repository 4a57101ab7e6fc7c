package version

// Version is the release tag stamped into --version output.
const Version = "0.1.0"
