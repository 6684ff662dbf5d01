package v1

import (
	"net/http"
	"time"

	"github.com/budget-tracker/backend/pkg/httperrors"
	"github.com/budget-tracker/backend/pkg/httputil"
	"github.com/budget-tracker/backend/pkg/ledger"
	"github.com/gin-gonic/gin"
)

// This is set by RegisterRoutes.
var backendVersion string

type Backup struct {
	Version      string          `json:"version" example:"1.4.0"`                     // The version of the backend the backup was made with
	Data         ledger.Snapshot `json:"data"`                                        // The complete state of the user
	CreationTime time.Time       `json:"creationTime" example:"2024-05-15T12:00:00Z"` // Time the backup was created
}

func (co Controller) RegisterBackupRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsBackup)
	r.GET("", co.GetBackup)
	r.PUT("", co.RestoreBackup)
}

//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Backup
//	@Success		204
//	@Router			/v1/backup [options]
func (co Controller) OptionsBackup(c *gin.Context) {
	httputil.OptionsGetPut(c)
}

//	@Summary		Backup
//	@Description	Exports the complete state of the user
//	@Tags			Backup
//	@Produce		json
//	@Success		200	{object}	Backup
//	@Router			/v1/backup [get]
func (co Controller) GetBackup(c *gin.Context) {
	c.JSON(http.StatusOK, Backup{
		Version:      backendVersion,
		Data:         co.store(c).Snapshot(),
		CreationTime: time.Now(),
	})
}

//	@Summary		Restore
//	@Description	Replaces the complete state of the user with a backup. The active month is reset to the current month
//	@Tags			Backup
//	@Accept			json
//	@Produce		json
//	@Success		200		{object}	Backup
//	@Failure		400		{object}	httperrors.HTTPError
//	@Failure		500		{object}	httperrors.HTTPError
//	@Param			backup	body		Backup	true	"Backup as returned by GET"
//	@Router			/v1/backup [put]
func (co Controller) RestoreBackup(c *gin.Context) {
	var backup Backup
	if err := httputil.BindData(c, &backup); err != nil {
		httperrors.Handler(c, err)
		return
	}

	store, err := co.registry.Restore(c.GetString(string(httputil.ContextIdentity)), backup.Data)
	if store == nil {
		httperrors.New(c, http.StatusBadRequest, err.Error())
		return
	}

	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, Backup{
		Version:      backendVersion,
		Data:         store.Snapshot(),
		CreationTime: time.Now(),
	})
}
