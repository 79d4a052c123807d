package cmd

import (
	"github.com/etnz/tradepulse/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Complete installs shell completion for the CLI. It must run before flag
// parsing, it takes over the process when the shell asks for completions.
func Complete(name string) {
	globals := map[string]complete.Predictor{
		"state-dir": predict.Dirs("*"),
		"capital":   predict.Something,
		"floor":     predict.Something,
	}

	topics, _ := docs.GetAllTopics()

	c := &complete.Command{
		Flags: globals,
		Sub: map[string]*complete.Command{
			"dashboard": {},
			"buy": {Flags: map[string]complete.Predictor{
				"t": predict.Something,
				"a": predict.Something,
				"p": predict.Something,
			}},
			"sell": {Flags: map[string]complete.Predictor{
				"t":   predict.Something,
				"a":   predict.Something,
				"p":   predict.Something,
				"all": predict.Nothing,
			}},
			"brief":    {Flags: map[string]complete.Predictor{"history": predict.Something}},
			"research": {},
			"topic":    {Args: predict.Set(topics)},
		},
	}
	c.Complete(name)
}
