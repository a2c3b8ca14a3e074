package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"game-manager/pkg/gmclient"
)

type clientFactory func() *gmclient.Client

func addBaseFlags(cmd *cobra.Command, id, name, description *string, defID, defName, defDescription string) {
	cmd.Flags().StringVar(id, "id", defID, "task id")
	cmd.Flags().StringVar(name, "name", defName, "task name")
	cmd.Flags().StringVar(description, "description", defDescription, "task description")
}

func newVoIPCmd(newClient clientFactory) *cobra.Command {
	task := gmclient.SampleVoIPTask
	cmd := &cobra.Command{
		Use:   "voip",
		Short: "Submit a VoIP task",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			exec, err := newClient().SubmitVoIPTask(cmd.Context(), task)
			return report(cmd, "voip "+task.ID, exec, err)
		},
	}
	addBaseFlags(cmd, &task.ID, &task.Name, &task.Description, task.ID, task.Name, task.Description)
	cmd.Flags().StringVar(&task.StreamURL, "stream-url", task.StreamURL, "audio stream URL")
	return cmd
}

func newVRCmd(newClient clientFactory) *cobra.Command {
	task := gmclient.SampleVRTask
	cmd := &cobra.Command{
		Use:   "vr",
		Short: "Submit a VR task",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			exec, err := newClient().SubmitVRTask(cmd.Context(), task)
			return report(cmd, "vr "+task.ID, exec, err)
		},
	}
	addBaseFlags(cmd, &task.ID, &task.Name, &task.Description, task.ID, task.Name, task.Description)
	cmd.Flags().StringVar(&task.AssetURL, "asset-url", task.AssetURL, "3D asset URL")
	return cmd
}

func newIoTCmd(newClient clientFactory) *cobra.Command {
	task := gmclient.SampleIoTTask
	payload := `{"temperature":25}`
	cmd := &cobra.Command{
		Use:   "iot",
		Short: "Submit an IoT task",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			task.Payload = nil
			if payload != "" {
				if err := json.Unmarshal([]byte(payload), &task.Payload); err != nil {
					return fmt.Errorf("--payload must be a JSON object: %w", err)
				}
			}
			exec, err := newClient().SubmitIoTTask(cmd.Context(), task)
			return report(cmd, "iot "+task.ID, exec, err)
		},
	}
	addBaseFlags(cmd, &task.ID, &task.Name, &task.Description, task.ID, task.Name, task.Description)
	cmd.Flags().StringVar(&task.DeviceID, "device-id", task.DeviceID, "device id")
	cmd.Flags().StringVar(&payload, "payload", payload, "device payload as a JSON object")
	return cmd
}

func newGeoCmd(newClient clientFactory) *cobra.Command {
	task := gmclient.SampleGeospatialTask
	cmd := &cobra.Command{
		Use:     "geo",
		Aliases: []string{"geospatial"},
		Short:   "Submit a geospatial task",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			exec, err := newClient().SubmitGeospatialTask(cmd.Context(), task)
			return report(cmd, "geospatial "+task.ID, exec, err)
		},
	}
	addBaseFlags(cmd, &task.ID, &task.Name, &task.Description, task.ID, task.Name, task.Description)
	cmd.Flags().Float64Var(&task.Location.Latitude, "lat", task.Location.Latitude, "latitude in degrees")
	cmd.Flags().Float64Var(&task.Location.Longitude, "lng", task.Location.Longitude, "longitude in degrees")
	return cmd
}

// report prints the outcome and passes err through so the exit code reflects it.
func report(cmd *cobra.Command, label string, exec *gmclient.Execution, err error) error {
	if err != nil {
		printFailure(cmd.ErrOrStderr(), label, err)
		return err
	}
	printExecution(cmd.OutOrStdout(), exec)
	return nil
}
