package main

import (
	"fmt"

	"github.com/MKhiriev/go-voice-keeper/internal/adapter"
	"github.com/MKhiriev/go-voice-keeper/internal/client"
	"github.com/MKhiriev/go-voice-keeper/internal/config"
	"github.com/MKhiriev/go-voice-keeper/internal/crypto"
	"github.com/MKhiriev/go-voice-keeper/internal/logger"
	"github.com/MKhiriev/go-voice-keeper/internal/utils"
	"github.com/spf13/cobra"
)

// session is built once per invocation by the root command.
type session struct {
	flags       config.ClientConfig
	askPassword bool
	prompter    client.PasswordPrompter
	app         *client.App
}

func newRootCmd() *cobra.Command {
	return newRootCommand(&session{prompter: client.NewTermPrompter()})
}

func newRootCommand(s *session) *cobra.Command {
	root := &cobra.Command{
		Use:   "voice-keeper",
		Short: "Store voice recordings encrypted end to end",
		Long: `voice-keeper encrypts audio on this machine before it is uploaded and
decrypts it again on download. Passwords are kept in memory for the
duration of one command and are never written to disk. With
--ask-password one password is asked up front and used for every file
the command touches.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			return s.open()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if s.app != nil {
				s.app.Close()
			}
		},
	}

	root.PersistentFlags().StringVarP(&s.flags.ServerURL, "server", "a", "", "server base URL")
	root.PersistentFlags().StringVarP(&s.flags.Token, "token", "t", "", "bearer token")
	root.PersistentFlags().DurationVar(&s.flags.RequestTimeout, "timeout", 0, "request timeout")
	root.PersistentFlags().StringVarP(&s.flags.JSONFilePath, "config", "c", "", "path to a JSON config file")
	root.PersistentFlags().BoolVarP(&s.askPassword, "ask-password", "p", false, "prompt once for a password shared by every file in this command")

	root.AddCommand(
		newUploadCmd(s),
		newDownloadCmd(s),
		newTranscribeCmd(s),
		newTranscriptCmd(s),
		newDeleteCmd(s),
		newVersionCmd(),
	)

	return root
}

func (s *session) open() error {
	log := logger.NewClientLogger("voice-keeper-client")

	cfg, err := config.GetClientConfig(s.flags)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}
	if userID, err := utils.ParseUserIDFromJWT(cfg.Token); err == nil {
		log.Debug().Int64("user_id", userID).Str("server", cfg.ServerURL).Msg("session opened")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(*cfg, log)
	if err != nil {
		return fmt.Errorf("create server adapter: %w", err)
	}

	s.app = client.NewApp(
		serverAdapter,
		adapter.NewHTTPObjectTransfer(cfg.RequestTimeout, log),
		crypto.NewFileCipher(),
		s.prompter,
		log,
	)

	if s.askPassword {
		if err = s.app.AskSessionPassword(); err != nil {
			return fmt.Errorf("session password: %w", err)
		}
	}
	return nil
}
