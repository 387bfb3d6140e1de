package api

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/peds-emergency-server/internal/domain"
)

// monitorEvent is the wire shape pushed to connected dashboards. It carries
// the triage-relevant summary, not the full assessment.
type monitorEvent struct {
	AssessmentID    string    `json:"assessment_id"`
	PatientType     string    `json:"patient_type"`
	TopDiagnosisID  string    `json:"top_diagnosis_id"`
	TopDiagnosis    string    `json:"top_diagnosis"`
	TopProbability  float64   `json:"top_probability"`
	Severity        string    `json:"severity"`
	Differentials   int       `json:"differentials"`
	DangerousCombos int       `json:"dangerous_combos"`
	Timestamp       time.Time `json:"timestamp"`
}

// Monitor pushes completed-assessment summaries to websocket subscribers
// (ward dashboards, supervising clinicians). A slow subscriber is dropped,
// never waited on.
type Monitor struct {
	logger   *logrus.Logger
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*websocket.Conn]chan monitorEvent
	closed  bool
}

// NewMonitor creates the live assessment feed
func NewMonitor(logger *logrus.Logger) *Monitor {
	return &Monitor{
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Dashboards are same-origin or reverse-proxied; CORS is handled
			// at the HTTP layer.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients: make(map[*websocket.Conn]chan monitorEvent),
	}
}

// HandleConnection upgrades the request and streams events until the client
// disconnects
func (m *Monitor) HandleConnection(c *gin.Context) {
	conn, err := m.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		m.logger.WithError(err).Warn("Websocket upgrade failed")
		return
	}

	events := make(chan monitorEvent, 16)

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		conn.Close()
		return
	}
	m.clients[conn] = events
	m.mu.Unlock()

	m.logger.WithField("remote", conn.RemoteAddr().String()).Debug("Monitor client connected")

	go m.writeLoop(conn, events)
	m.readLoop(conn)
}

// writeLoop drains the client's event channel onto the wire
func (m *Monitor) writeLoop(conn *websocket.Conn, events chan monitorEvent) {
	for event := range events {
		conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
		if err := conn.WriteJSON(event); err != nil {
			m.remove(conn)
			return
		}
	}
	conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	conn.Close()
}

// readLoop discards inbound frames and detects disconnects
func (m *Monitor) readLoop(conn *websocket.Conn) {
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			m.remove(conn)
			return
		}
	}
}

// Broadcast fans a completed assessment out to every connected subscriber
func (m *Monitor) Broadcast(result *domain.AnalysisResult) {
	event := monitorEvent{
		AssessmentID:    result.AssessmentID,
		PatientType:     result.SurveyData.PatientType.String(),
		Differentials:   len(result.Differentials),
		DangerousCombos: len(result.DangerousOverlaps),
		Timestamp:       result.Timestamp,
	}
	if top := result.TopDifferential(); top != nil {
		event.TopDiagnosisID = top.ID
		event.TopDiagnosis = top.Name
		event.TopProbability = top.Probability
		event.Severity = top.Category.String()
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for conn, ch := range m.clients {
		select {
		case ch <- event:
		default:
			// Full buffer means a stalled client; drop it.
			delete(m.clients, conn)
			close(ch)
			m.logger.WithField("remote", conn.RemoteAddr().String()).Warn("Dropping slow monitor client")
		}
	}
}

// remove detaches a client and releases its channel
func (m *Monitor) remove(conn *websocket.Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if ch, ok := m.clients[conn]; ok {
		delete(m.clients, conn)
		close(ch)
	}
	conn.Close()
}

// Close disconnects all subscribers during server shutdown
func (m *Monitor) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	for conn, ch := range m.clients {
		delete(m.clients, conn)
		close(ch)
	}
}
