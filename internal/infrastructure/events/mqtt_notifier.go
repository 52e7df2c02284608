package events

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	log "github.com/sirupsen/logrus"

	"warranty_hub/internal/domain/entities"
	"warranty_hub/internal/usecase/interfaces"
)

var ErrMissingMQTTBroker = errors.New("missing MQTT_BROKER")

// Dashboard event topics. Clients subscribe to react to session expiry and
// to refresh claim/appointment views without polling.
const (
	topicSessionExpired = "warranty/dashboard/session-expired"
	topicClaims         = "warranty/dashboard/claims"
	topicAppointments   = "warranty/dashboard/appointments"

	publishQoS     = 1
	connectTimeout = 5 * time.Second
)

// MQTTNotifier publishes dashboard events to an MQTT broker. Wiring it is
// optional: without MQTT_BROKER the service runs with no notifier and all
// publishes are skipped by the callers.
type MQTTNotifier struct {
	client   mqtt.Client
	clientID string
}

var _ interfaces.IEventNotifier = (*MQTTNotifier)(nil)

func NewMQTTNotifierFromEnv() (*MQTTNotifier, error) {
	broker := os.Getenv("MQTT_BROKER")
	if broker == "" {
		return nil, ErrMissingMQTTBroker
	}
	clientID := getenvDefault("MQTT_CLIENT_ID", "warranty-hub")

	opts := mqtt.NewClientOptions()
	opts.AddBroker(broker)
	opts.SetClientID(clientID)
	opts.SetAutoReconnect(true)
	opts.SetCleanSession(true)
	opts.SetConnectTimeout(connectTimeout)
	if u := os.Getenv("MQTT_USERNAME"); u != "" {
		opts.SetUsername(u)
	}
	if p := os.Getenv("MQTT_PASSWORD"); p != "" {
		opts.SetPassword(p)
	}

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker: %w", token.Error())
	}
	log.Printf("[events][mqtt] connected broker=%s client_id=%s", broker, clientID)

	return &MQTTNotifier{client: client, clientID: clientID}, nil
}

func (n *MQTTNotifier) SessionExpired(accountID string) error {
	return n.publish(topicSessionExpired, map[string]string{
		"event":      "session.expired",
		"account_id": accountID,
		"redirect":   "/login",
	})
}

func (n *MQTTNotifier) ClaimTransitioned(rec entities.WorkflowAuditRecord) error {
	return n.publish(topicClaims, map[string]any{
		"event":       "claim.transitioned",
		"claim_id":    rec.ClaimID,
		"action":      rec.Action,
		"from_status": rec.FromStatus,
		"to_status":   rec.ToStatus,
	})
}

func (n *MQTTNotifier) AppointmentScheduled(appt entities.Appointment) error {
	return n.publish(topicAppointments, map[string]any{
		"event":          "appointment.scheduled",
		"appointment_id": appt.AppointmentID,
		"vin":            appt.VIN,
		"campaign_id":    appt.CampaignID,
		"date_time":      appt.DateTime,
	})
}

func (n *MQTTNotifier) Close() {
	n.client.Disconnect(250)
}

func (n *MQTTNotifier) publish(topic string, payload any) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	token := n.client.Publish(topic, publishQoS, false, b)
	token.Wait()
	if token.Error() != nil {
		return fmt.Errorf("failed to publish to topic %s: %w", topic, token.Error())
	}
	return nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
