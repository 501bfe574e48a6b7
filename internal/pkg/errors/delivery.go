package errors

import "fmt"

// DeliveryError is raised by the mailer when the mail provider rejects or
// fails a send. Transient failures are retried by the task queue, permanent
// ones terminate the job.
type DeliveryError struct {
	Transient bool
	Status    int
	Err       error
}

func (e *DeliveryError) Error() string {
	kind := "permanent"
	if e.Transient {
		kind = "transient"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s delivery failure (status %d): %v", kind, e.Status, e.Err)
	}
	return fmt.Sprintf("%s delivery failure (status %d)", kind, e.Status)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

func TransientDelivery(status int, err error) error {
	return &DeliveryError{Transient: true, Status: status, Err: err}
}

func PermanentDelivery(status int, err error) error {
	return &DeliveryError{Transient: false, Status: status, Err: err}
}
