package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/parladev/parla/internal/speech"
)

var speakCmd = &cobra.Command{
	Use:   "speak [text]",
	Short: "Speak a phrase aloud (and warm the audio cache)",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		if cfg.Speech.APIKey == "" {
			return fmt.Errorf("speech needs OPENAI_API_KEY set")
		}

		lang, _ := cmd.Flags().GetString("lang")
		if lang == "" {
			lang = cfg.Source.Lang2.Code
		}
		slow, _ := cmd.Flags().GetBool("slow")

		cacheDir, err := speech.DefaultCacheDir()
		if err != nil {
			return err
		}
		play, err := speech.SystemPlayer()
		if err != nil {
			fmt.Println("no audio player found; caching only")
			play = nil
		}

		synth := speech.NewOpenAI(cfg.Speech.APIKey, cfg.Speech.Model, cfg.Speech.Voice)
		sp := speech.New(synth, cacheDir, play)
		return sp.Speak(cmd.Context(), strings.Join(args, " "), lang, slow)
	},
}

func init() {
	speakCmd.Flags().String("lang", "", "Language code of the phrase (defaults to the second configured language)")
	speakCmd.Flags().Bool("slow", false, "Speak slowly")
}
