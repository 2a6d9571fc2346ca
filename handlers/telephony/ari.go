package telephony

import (
	"database/sql"

	"github.com/CyCoreSystems/ari/v5"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"denku.com/billing/utils"
)

// ARITelephonyHandler flips number routing in the platform database and
// controls live channels through the Asterisk REST Interface.
type ARITelephonyHandler struct {
	db        *sql.DB
	ariClient *ari.Client
}

func NewARITelephonyHandler(db *sql.DB, ariClient *ari.Client) *ARITelephonyHandler {
	return &ARITelephonyHandler{
		db:        db,
		ariClient: ariClient,
	}
}

// BindNumbers re-attaches all of the workspace's numbers to call handling.
// Already-bound numbers are untouched, so repeat calls are harmless.
func (hndl *ARITelephonyHandler) BindNumbers(workspaceId int) error {
	_, err := hndl.db.Exec("UPDATE did_numbers SET routing_enabled = 1 WHERE workspace_id = ?", workspaceId)
	if err != nil {
		return errors.Wrap(err, "could not bind workspace numbers")
	}
	return nil
}

// UnbindNumbers detaches the workspace's numbers so inbound calls no longer
// reach it. A no-op when nothing is bound.
func (hndl *ARITelephonyHandler) UnbindNumbers(workspaceId int) error {
	_, err := hndl.db.Exec("UPDATE did_numbers SET routing_enabled = 0 WHERE workspace_id = ?", workspaceId)
	if err != nil {
		return errors.Wrap(err, "could not unbind workspace numbers")
	}
	return nil
}

// HangupChannel tears down a live channel. The caller hears the platform's
// normal rejection handling, never a raw error.
func (hndl *ARITelephonyHandler) HangupChannel(channelId string) error {
	if hndl.ariClient == nil {
		utils.Log(logrus.InfoLevel, "ARI is not connected, skipping hangup for channel "+channelId)
		return nil
	}
	key := ari.NewKey(ari.ChannelKey, channelId)
	return (*hndl.ariClient).Channel().Hangup(key, "normal")
}
