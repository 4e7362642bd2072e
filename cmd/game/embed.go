package main

import "embed"

//go:embed configs/*.yaml
var configFS embed.FS
