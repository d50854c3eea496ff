package workorder

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// newWONo genera un número de orden legible: WO-<epoch millis>-<sufijo>.
// El sufijo aleatorio hace la colisión prácticamente imposible; aun así el
// insert confía en el constraint único (company_id, wo_no) y el caso de uso
// reintenta una vez antes de devolver Conflict.
func newWONo(now time.Time) string {
	suffix := strings.ToUpper(uuid.New().String()[:6])
	return fmt.Sprintf("WO-%d-%s", now.UnixMilli(), suffix)
}
