package model

// Version is overridden at build time with -ldflags "-X acstools/internal/model.Version=...".
var Version = "dev"
