package websocket

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/hushryd/tracking-service/internal/pkg/constants"
	"github.com/hushryd/tracking-service/internal/pkg/logger"
	"github.com/hushryd/tracking-service/internal/pkg/models"
	"github.com/hushryd/tracking-service/services/tracking"
)

// handleLocationUpdate feeds one driver GPS tick into the pipeline. Invalid
// payloads are dropped without an error frame so a misbehaving device
// cannot turn the ingest path into an error firehose; the drop is visible
// at debug level only.
func (h *WebSocketHandler) handleLocationUpdate(ctx context.Context, client *models.WebSocketClient, data json.RawMessage) error {
	if client.Role != constants.RoleDriver {
		return h.manager.SendErrorMessage(client.Conn, constants.ErrorUnauthorized, "only drivers publish locations")
	}

	var update models.LocationUpdate
	if err := json.Unmarshal(data, &update); err != nil {
		logger.Debug("Dropping malformed location payload",
			logger.String("conn_id", client.ConnID),
			logger.Err(err))
		return nil
	}
	update.DriverID = client.UserID

	if err := h.trackingUC.IngestLocation(ctx, &update); err != nil {
		if errors.Is(err, tracking.ErrInvalidLocation) {
			logger.Debug("Dropping invalid location update",
				logger.String("conn_id", client.ConnID),
				logger.String("trip_id", update.TripID))
			return nil
		}
		return h.manager.SendErrorMessage(client.Conn, constants.ErrorInternalError, "location update failed")
	}

	h.safetyUC.ObserveLocation(ctx, &update)
	return nil
}
