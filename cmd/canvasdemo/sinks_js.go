//go:build js && wasm

package main

// Under WebAssembly, -sink js hands frames straight to the page.
import _ "github.com/gogpu/fastcanvas/recording/sinks/js"
