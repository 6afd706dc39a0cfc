package main

import (
	"fmt"
	"log"
	"os"

	"git.lost.host/meutraa/caeli/internal/config"
)

func main() {
	if err := run(os.Args[1:]); nil != err {
		log.Fatalln(err)
	}
}

func run(args []string) error {
	c, err := config.Parse(args)
	if nil != err {
		return err
	}

	p, err := NewProgram(c)
	if nil != err {
		return err
	}

	// The terminal belongs to the renderer while the game runs
	logFile, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if nil != err {
		return fmt.Errorf("unable to open log file: %w", err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)
	defer log.SetOutput(os.Stderr)

	if err := p.Start(); nil != err {
		p.Stop()
		return err
	}
	p.Run()
	p.Save()
	p.Stop()

	fmt.Printf("%v hits from %v activations in %v ticks\n", p.hits, len(p.activations), p.session.TickCount())
	return nil
}
