package repository

const (
	totalsQuery = `
	SELECT (SELECT COUNT(*) FROM guests) AS guest_count,
	       (SELECT COALESCE(SUM(total_amount), 0) FROM bookings)
	         + (SELECT COALESCE(SUM(total_order_cost), 0) FROM service_orders) AS total_revenue,
	       (SELECT COUNT(*) FROM rooms WHERE status = 'available') AS available_rooms`

	recentBookingsQuery = `
	SELECT b.booking_id, g.full_name, b.check_in, b.booking_status, b.total_amount
	FROM bookings b
	JOIN guests g ON g.guest_id = b.guest_id
	ORDER BY b.booking_id DESC
	LIMIT 5`

	occupancyQuery = `SELECT room_number, type_name, total_bookings FROM room_occupancy ORDER BY room_number`

	shiftOverlapQuery = `SELECT employee_one, employee_two, shift_time FROM shift_overlap`

	packagesQuery = `SELECT room_type, service_name, package_price FROM package_possibilities LIMIT 5`

	vipGuestsQuery = `
	SELECT g.full_name, t.spent AS total_lifetime_spent, get_guest_level(t.spent) AS vip_status
	FROM guests g
	JOIN LATERAL (
	    SELECT COALESCE((SELECT SUM(b.total_amount) FROM bookings b WHERE b.guest_id = g.guest_id), 0)
	         + COALESCE((SELECT SUM(so.total_order_cost)
	                     FROM service_orders so
	                     JOIN bookings b ON b.booking_id = so.booking_id
	                     WHERE b.guest_id = g.guest_id), 0) AS spent
	) t ON TRUE
	ORDER BY total_lifetime_spent DESC
	LIMIT 5`

	topServicesQuery = `
	SELECT s.service_name, SUM(so.total_order_cost) AS total_revenue
	FROM services s
	JOIN service_orders so ON so.service_id = s.service_id
	GROUP BY s.service_name
	HAVING SUM(so.total_order_cost) > 1000
	ORDER BY total_revenue DESC`

	unusedRoomTypesQuery = `
	SELECT name, base_price
	FROM room_types
	WHERE type_id NOT IN (
	    SELECT DISTINCT r.type_id
	    FROM rooms r
	    JOIN bookings b ON b.room_id = r.room_id
	)
	ORDER BY name`

	serviceSummaryQuery = `
	SELECT b.booking_id, g.full_name, string_agg(s.service_name, ', ' ORDER BY so.order_id) AS services_ordered
	FROM bookings b
	JOIN guests g ON g.guest_id = b.guest_id
	JOIN service_orders so ON so.booking_id = b.booking_id
	JOIN services s ON s.service_id = so.service_id
	GROUP BY b.booking_id, g.full_name
	ORDER BY b.booking_id`
)
