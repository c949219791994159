package order_created

import "github.com/IBM/sarama"

// ProcessMessage exposes messageProcessing for tests.
func (h *Handler) ProcessMessage(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	return h.messageProcessing(sess, message)
}
