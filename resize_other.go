//go:build !unix

package main

import "os"

// terminals here don't deliver a resize signal; the layout is chosen once
func notifyResize(c chan<- os.Signal) {}

func stopResize(c chan<- os.Signal) {}
