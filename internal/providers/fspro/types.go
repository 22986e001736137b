package fspro

import (
	"github.com/bytedance/sonic"

	"github.com/GriffinCanCode/FSPro/backend/internal/fs"
	"github.com/GriffinCanCode/FSPro/backend/internal/fs/icon"
	"github.com/GriffinCanCode/FSPro/backend/internal/logging"
	"github.com/GriffinCanCode/FSPro/backend/internal/monitoring"
	"github.com/GriffinCanCode/FSPro/backend/internal/types"
)

// Ops carries the dependencies shared by all command groups
type Ops struct {
	Icons   *icon.Extractor
	Metrics *monitoring.Metrics
	Log     *logging.Logger
}

// Success helper
func Success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

// Failure helper
func Failure(message string) (*types.Result, error) {
	msg := message
	return &types.Result{Success: false, Error: &msg}, nil
}

// FailureErr reports err with its kind attached so callers can branch
// on not_found versus invalid_path without parsing messages.
func FailureErr(err error) (*types.Result, error) {
	msg := err.Error()
	return &types.Result{
		Success: false,
		Error:   &msg,
		Data:    map[string]interface{}{"kind": string(fs.KindOf(err))},
	}, nil
}

// pathParam extracts the mandatory path argument
func pathParam(params map[string]interface{}) (string, bool) {
	path, ok := params["path"].(string)
	return path, ok && path != ""
}

// intParam reads a numeric argument; JSON numbers arrive as float64
func intParam(params map[string]interface{}, key string) (int, bool) {
	switch v := params[key].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	default:
		return 0, false
	}
}

// decodeParam re-encodes a loosely typed argument into dst. Used for
// structured arguments like filters and option blocks.
func decodeParam(params map[string]interface{}, key string, dst interface{}) error {
	raw, ok := params[key]
	if !ok || raw == nil {
		return nil
	}
	buf, err := sonic.Marshal(raw)
	if err != nil {
		return err
	}
	return sonic.Unmarshal(buf, dst)
}

// toMap flattens a typed record into the generic result payload
func toMap(v interface{}) (map[string]interface{}, error) {
	buf, err := sonic.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out map[string]interface{}
	if err := sonic.Unmarshal(buf, &out); err != nil {
		return nil, err
	}
	return out, nil
}
