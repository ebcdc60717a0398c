// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package message

const (
	CommandKey         = "command"
	ActionKey          = "action"
	RequestKey         = "request"
	EnabledKey         = "enabled"
	BypassKey          = "bypass"
	FormatKey          = "format"
	UnixTimeKey        = "unix_time"
	CommandResponseKey = "command_response"
	MessageKey         = "message"
	StatusKey          = "status"
)

// Command names understood by the vehicle interface.
const (
	CommandVersion            = "version"
	CommandDeviceId           = "device_id"
	CommandDiagnosticRequest  = "diagnostic_request"
	CommandPassthrough        = "passthrough"
	CommandAfBypass           = "af_bypass"
	CommandPayloadFormat      = "payload_format"
	CommandPredefinedObd2     = "predefined_obd2"
	CommandModemConfiguration = "modem_configuration"
	CommandRtcConfiguration   = "rtc_configuration"
	CommandSdMountStatus      = "sd_mount_status"
)

type Command struct {
	Base
	Command  string
	Action   string
	Request  *DiagnosticRequest
	Bus      int
	Enabled  *bool
	Bypass   *bool
	Format   string
	UnixTime int64
}

func (m *Command) Tag() Tag { return TagCommand }

func (m *Command) Values() Fields {
	f := Fields{CommandKey: m.Command}
	f.setString(ActionKey, m.Action)
	if m.Request != nil {
		f[RequestKey] = m.Request
	}
	if m.Bus != 0 {
		f[BusKey] = int64(m.Bus)
	}
	f.setBool(EnabledKey, m.Enabled)
	f.setBool(BypassKey, m.Bypass)
	f.setString(FormatKey, m.Format)
	if m.UnixTime != 0 {
		f[UnixTimeKey] = m.UnixTime
	}
	return f
}

func (m *Command) SetValues(f Fields) error {
	m.Command = f.String(CommandKey)
	m.Action = f.String(ActionKey)
	m.Request, _ = f[RequestKey].(*DiagnosticRequest)
	m.Bus = int(f.Int(BusKey))
	m.Enabled = f.BoolPtr(EnabledKey)
	m.Bypass = f.BoolPtr(BypassKey)
	m.Format = f.String(FormatKey)
	m.UnixTime = f.Int(UnixTimeKey)
	return nil
}

type CommandResponse struct {
	Base
	Command string
	Message string
	Status  *bool
}

func (m *CommandResponse) Tag() Tag { return TagCommandResponse }

func (m *CommandResponse) Values() Fields {
	f := Fields{CommandResponseKey: m.Command}
	f.setString(MessageKey, m.Message)
	f.setBool(StatusKey, m.Status)
	return f
}

func (m *CommandResponse) SetValues(f Fields) error {
	m.Command = f.String(CommandResponseKey)
	m.Message = f.String(MessageKey)
	m.Status = f.BoolPtr(StatusKey)
	return nil
}
