package app

import "colorca/internal/sim"

// NewLoop builds the simulation shown in the window. The grid starts out
// randomly filled and paused.
func NewLoop(cfg *Config) (*sim.Loop, error) {
	simCfg, err := cfg.SimConfig()
	if err != nil {
		return nil, err
	}
	loop, err := sim.New(simCfg)
	if err != nil {
		return nil, err
	}
	loop.RandomFill()
	return loop, nil
}
