package main

// version is reported by --version. Release builds override it with
// -ldflags "-X main.version=...".
var version = "1.0.0"
