package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-voice-keeper/internal/app"
	"github.com/MKhiriev/go-voice-keeper/internal/client"
	"github.com/MKhiriev/go-voice-keeper/models"
	"github.com/spf13/cobra"
)

// maxPasswordAttempts bounds re-prompting after a wrong password.
const maxPasswordAttempts = 3

func newUploadCmd(s *session) *cobra.Command {
	var opts client.UploadOptions

	cmd := &cobra.Command{
		Use:   "upload <file>",
		Short: "Encrypt and upload an audio file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := s.app.Upload(cmd.Context(), args[0], opts)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", rec.RecordingID, rec.FileName)
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.Recoverable, "recoverable", false, "let the server keep the password for transcription and recovery")
	cmd.Flags().BoolVar(&opts.Plain, "plain", false, "upload without encryption")

	return cmd
}

func newDownloadCmd(s *session) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "download <recording-id>...",
		Short: "Download and decrypt one or more recordings",
		Long: `Download and decrypt recordings. With several ids, --output names a
directory and each file is saved under its original name.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				if output == "-" {
					return errors.New(`--output "-" takes a single recording`)
				}
				if output != "" {
					if err := os.MkdirAll(output, 0o700); err != nil {
						return fmt.Errorf("create %s: %w", output, err)
					}
				}
			}

			for _, recordingID := range args {
				material, audio, err := downloadWithRetry(cmd, s.app, recordingID)
				if err != nil {
					return err
				}

				name := filepath.Base(material.FileName)
				if name == "." || name == string(filepath.Separator) {
					name = recordingID
				}

				path := name
				switch {
				case len(args) == 1 && output != "":
					path = output
				case output != "":
					path = filepath.Join(output, name)
				}
				if err = writeOutput(cmd.OutOrStdout(), path, audio); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", `output file, "-" for stdout, or a directory for several ids (default: original file name)`)

	return cmd
}

// downloadWithRetry re-prompts after a wrong password. A password the server
// recovered is not retried: asking the user cannot fix it.
func downloadWithRetry(cmd *cobra.Command, c *client.App, recordingID string) (models.PlaybackMaterial, []byte, error) {
	var (
		material models.PlaybackMaterial
		err      error
	)
	for attempt := 1; attempt <= maxPasswordAttempts; attempt++ {
		var buf bytes.Buffer
		material, err = c.Download(cmd.Context(), recordingID, &buf)
		if err == nil {
			return material, buf.Bytes(), nil
		}

		var decryptErr *client.DecryptError
		if !errors.As(err, &decryptErr) {
			return material, nil, err
		}
		fmt.Fprintln(cmd.ErrOrStderr(), app.MsgWrongPasswordOrCorrupted)
		if !decryptErr.Retryable() {
			return material, nil, err
		}
	}
	return material, nil, err
}

func newTranscribeCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "transcribe <recording-id>",
		Short: "Request a server-side transcription",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := s.app.RequestTranscription(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", args[0], models.TranscriptionPending)
			return nil
		},
	}
}

func newTranscriptCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "transcript <recording-id>",
		Short: "Show the transcription status and text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := s.app.Transcript(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "status: %s\n", resp.Status)
			if resp.Transcript != nil {
				fmt.Fprintln(cmd.OutOrStdout(), *resp.Transcript)
			}
			return nil
		},
	}
}

func newDeleteCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <recording-id>",
		Short: "Delete a recording and its audio",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.app.Delete(cmd.Context(), args[0])
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Run: func(cmd *cobra.Command, _ []string) {
			buildInfo().Fprint(cmd.OutOrStdout())
		},
	}
}

func writeOutput(stdout io.Writer, path string, data []byte) error {
	if path == "-" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Fprintf(stdout, "saved %s (%d bytes)\n", path, len(data))
	return nil
}
