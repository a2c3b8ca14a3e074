package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"game-manager/pkg/gmclient"
)

// taskFile is the document read by "gmctl apply".
//
//	tasks:
//	  - kind: voip
//	    id: voip-1
//	    name: Test VoIP Task
//	    streamUrl: https://example.com/stream.mp3
type taskFile struct {
	Tasks []taskEntry `yaml:"tasks"`
}

// taskEntry is the union of every task shape; kind picks which fields apply.
type taskEntry struct {
	Kind        gmclient.Kind      `yaml:"kind"`
	ID          string             `yaml:"id"`
	Name        string             `yaml:"name"`
	Description string             `yaml:"description"`
	StreamURL   string             `yaml:"streamUrl"`
	AssetURL    string             `yaml:"assetUrl"`
	DeviceID    string             `yaml:"deviceId"`
	Payload     map[string]any     `yaml:"payload"`
	Location    *gmclient.Location `yaml:"location"`
}

// body returns the request body for the entry's kind.
func (e taskEntry) body() (any, error) {
	switch e.Kind {
	case gmclient.KindVoIP:
		return gmclient.VoIPTask{ID: e.ID, Name: e.Name, Description: e.Description, StreamURL: e.StreamURL}, nil
	case gmclient.KindVR:
		return gmclient.VRTask{ID: e.ID, Name: e.Name, Description: e.Description, AssetURL: e.AssetURL}, nil
	case gmclient.KindIoT:
		return gmclient.IoTTask{ID: e.ID, Name: e.Name, Description: e.Description, DeviceID: e.DeviceID, Payload: e.Payload}, nil
	case gmclient.KindGeospatial:
		if e.Location == nil {
			return nil, errors.New("location is required")
		}
		return gmclient.GeospatialTask{ID: e.ID, Name: e.Name, Description: e.Description, Location: *e.Location}, nil
	default:
		return nil, fmt.Errorf("unknown kind %q", e.Kind)
	}
}

func parseTaskFile(r io.Reader) (taskFile, error) {
	var f taskFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return f, nil
		}
		return f, fmt.Errorf("failed to parse task file: %w", err)
	}
	return f, nil
}

func newApplyCmd(newClient clientFactory) *cobra.Command {
	var path string
	var keepGoing bool

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Submit every task listed in a YAML file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if path != "-" {
				f, err := os.Open(path)
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			file, err := parseTaskFile(in)
			if err != nil {
				return err
			}

			client := newClient()
			failed := 0
			for i, entry := range file.Tasks {
				label := fmt.Sprintf("tasks[%d] %s %s", i, entry.Kind, entry.ID)

				body, err := entry.body()
				if err == nil {
					var exec *gmclient.Execution
					exec, err = client.Submit(cmd.Context(), entry.Kind, body)
					if err == nil {
						printExecution(cmd.OutOrStdout(), exec)
						continue
					}
				}

				printFailure(cmd.ErrOrStderr(), label, err)
				failed++
				if !keepGoing {
					return fmt.Errorf("%s: %w", label, err)
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d tasks failed", failed, len(file.Tasks))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "file", "f", "-", "YAML task file, - for stdin")
	cmd.Flags().BoolVar(&keepGoing, "keep-going", false, "submit remaining tasks after a failure")
	return cmd
}
