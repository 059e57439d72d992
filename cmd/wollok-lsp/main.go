// SPDX-License-Identifier: Apache-2.0
package main

import (
	"os"

	"github.com/spf13/pflag"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"wollok/internal/config"
	"wollok/internal/lsp"
)

var log = commonlog.GetLogger("wollok.lsp.server")

func main() {
	var configPath string
	var debug bool
	flags := pflag.NewFlagSet("wollok-lsp", pflag.ExitOnError)
	flags.StringVar(&configPath, "config", "", "Path to a wollok.toml configuration file.")
	flags.BoolVar(&debug, "debug", false, "Log every JSON-RPC message.")
	_ = flags.Parse(os.Args[1:])

	cfg, err := config.Load(configPath)
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	// stdout carries the protocol, so logs only go to a file or stderr.
	var logFile *string
	if cfg.Log.File != "" {
		logFile = &cfg.Log.File
	}
	commonlog.Configure(max(cfg.Log.Verbosity, 1), logFile)

	wollokHandler := lsp.NewWollokHandler()

	handler := protocol.Handler{
		Initialize:                     wollokHandler.Initialize,
		Initialized:                    wollokHandler.Initialized,
		Shutdown:                       wollokHandler.Shutdown,
		SetTrace:                       wollokHandler.SetTrace,
		TextDocumentDidOpen:            wollokHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           wollokHandler.TextDocumentDidClose,
		TextDocumentDidChange:          wollokHandler.TextDocumentDidChange,
		TextDocumentCompletion:         wollokHandler.TextDocumentCompletion,
		TextDocumentSemanticTokensFull: wollokHandler.TextDocumentSemanticTokensFull,
	}

	s := server.NewServer(&handler, cfg.LSP.Name, debug)

	log.Infof("starting %s", cfg.LSP.Name)
	if err := s.RunStdio(); err != nil {
		log.Errorf("server stopped: %s", err)
		os.Exit(1)
	}
}
